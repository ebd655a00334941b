package dashboard

import (
	"testing"

	"skillswap/internal/domain/skill"
)

func skillOf(title string, lt skill.ListingType) skill.Skill {
	return skill.Skill{Title: title, ListingType: lt}
}

func TestSummarize_Partitions(t *testing.T) {
	in := []skill.Skill{
		skillOf("Guitar", skill.ListingTypeTeach),
		skillOf("Spanish", skill.ListingTypeLearn),
		skillOf("Yoga", skill.ListingTypeTeach),
		skillOf("Photography", skill.ListingTypeLearn),
		skillOf("Baking", skill.ListingTypeTeach),
	}

	got := Summarize(in)

	if got.TeachCount != 3 || got.LearnCount != 2 {
		t.Fatalf("counts: teach=%d learn=%d", got.TeachCount, got.LearnCount)
	}
	if got.TeachCount+got.LearnCount != len(in) {
		t.Fatalf("partition does not cover input: %d+%d != %d", got.TeachCount, got.LearnCount, len(in))
	}
	if len(got.Teaching) != got.TeachCount || len(got.Learning) != got.LearnCount {
		t.Fatalf("counts disagree with slices")
	}

	wantTeach := []string{"Guitar", "Yoga", "Baking"}
	for i, s := range got.Teaching {
		if s.Title != wantTeach[i] {
			t.Fatalf("teaching order: got %q at %d, want %q", s.Title, i, wantTeach[i])
		}
	}
	wantLearn := []string{"Spanish", "Photography"}
	for i, s := range got.Learning {
		if s.Title != wantLearn[i] {
			t.Fatalf("learning order: got %q at %d, want %q", s.Title, i, wantLearn[i])
		}
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)
	if got.TeachCount != 0 || got.LearnCount != 0 {
		t.Fatalf("expected zero counts, got %+v", got)
	}
	if got.Teaching == nil || got.Learning == nil {
		t.Fatalf("partitions must be empty slices, not nil")
	}
}
