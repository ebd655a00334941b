package dto

import "skillswap/internal/domain/discovery"

type BrowseListingResponse struct {
	Skill SkillResponse   `json:"skill"`
	Owner ProfileResponse `json:"owner"`
}

type BrowseResponse struct {
	Listings   []BrowseListingResponse `json:"listings"`
	Categories []string                `json:"categories"`
}

func NewBrowseResponse(listings []discovery.Listing, categories []string) BrowseResponse {
	items := make([]BrowseListingResponse, 0, len(listings))
	for _, l := range listings {
		items = append(items, BrowseListingResponse{
			Skill: NewSkillResponse(l.Skill),
			Owner: NewProfileResponse(l.Owner),
		})
	}
	return BrowseResponse{Listings: items, Categories: categories}
}
