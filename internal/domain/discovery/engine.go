package discovery

import (
	"strings"

	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Listing is a discoverable skill joined with its owner's profile.
type Listing struct {
	Skill skill.Skill
	Owner profile.Profile
}

// Spec is a filter specification over an already-fetched candidate list.
type Spec struct {
	SearchTerm  string
	Category    string
	ListingType skill.ListingType
}

// Filter narrows candidates in three stages: listing type (mandatory, the
// result is never a mixed teach/learn set), then case-insensitive substring
// search over title/description/category, then category equality unless the
// "all" sentinel. Input order is preserved; an empty result is a valid state.
func Filter(candidates []Listing, spec Spec) []Listing {
	filtered := make([]Listing, 0, len(candidates))
	for _, c := range candidates {
		if c.Skill.ListingType == spec.ListingType {
			filtered = append(filtered, c)
		}
	}

	if term := strings.ToLower(strings.TrimSpace(spec.SearchTerm)); term != "" {
		matched := filtered[:0]
		for _, c := range filtered {
			if strings.Contains(strings.ToLower(c.Skill.Title), term) ||
				strings.Contains(strings.ToLower(c.Skill.Description), term) ||
				strings.Contains(strings.ToLower(string(c.Skill.Category)), term) {
				matched = append(matched, c)
			}
		}
		filtered = matched
	}

	if spec.Category != "" && spec.Category != CategoryAll {
		matched := filtered[:0]
		for _, c := range filtered {
			if string(c.Skill.Category) == spec.Category {
				matched = append(matched, c)
			}
		}
		filtered = matched
	}

	return filtered
}

// Categories derives the distinct category values present in the full
// candidate list, first-seen order. Derived from the unfiltered list so the
// filter choices do not shrink as the user filters.
func Categories(candidates []Listing) []string {
	seen := make(map[skill.Category]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.Skill.Category]; ok {
			continue
		}
		seen[c.Skill.Category] = struct{}{}
		out = append(out, string(c.Skill.Category))
	}
	return out
}
