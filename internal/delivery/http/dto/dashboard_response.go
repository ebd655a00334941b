package dto

import "skillswap/internal/usecase"

type DashboardResponse struct {
	Profile         ProfileResponse `json:"profile"`
	Teaching        []SkillResponse `json:"teaching"`
	Learning        []SkillResponse `json:"learning"`
	TeachCount      int             `json:"teach_count"`
	LearnCount      int             `json:"learn_count"`
	ConnectionCount int             `json:"connection_count"`
}

func NewDashboardResponse(o usecase.DashboardOverview) DashboardResponse {
	return DashboardResponse{
		Profile:         NewProfileResponse(o.Profile),
		Teaching:        NewSkillResponses(o.Summary.Teaching),
		Learning:        NewSkillResponses(o.Summary.Learning),
		TeachCount:      o.Summary.TeachCount,
		LearnCount:      o.Summary.LearnCount,
		ConnectionCount: o.ConnectionCount,
	}
}
