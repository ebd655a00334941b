package dashboard

import "skillswap/internal/domain/skill"

// Summary partitions a user's own skills by listing type, preserving the
// original order within each partition.
type Summary struct {
	Teaching   []skill.Skill
	Learning   []skill.Skill
	TeachCount int
	LearnCount int
}

func Summarize(skills []skill.Skill) Summary {
	teaching := make([]skill.Skill, 0, len(skills))
	learning := make([]skill.Skill, 0, len(skills))
	for _, s := range skills {
		switch s.ListingType {
		case skill.ListingTypeTeach:
			teaching = append(teaching, s)
		case skill.ListingTypeLearn:
			learning = append(learning, s)
		}
	}
	return Summary{
		Teaching:   teaching,
		Learning:   learning,
		TeachCount: len(teaching),
		LearnCount: len(learning),
	}
}
