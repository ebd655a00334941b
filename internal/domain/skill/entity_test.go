package skill

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseListingType(t *testing.T) {
	cases := []struct {
		in   string
		want ListingType
		ok   bool
	}{
		{in: "teach", want: ListingTypeTeach, ok: true},
		{in: "learn", want: ListingTypeLearn, ok: true},
		{in: " teach ", want: ListingTypeTeach, ok: true},
		{in: "Teach", ok: false},
		{in: "", ok: false},
		{in: "both", ok: false},
	}
	for _, c := range cases {
		got, ok := ParseListingType(c.in)
		if ok != c.ok {
			t.Fatalf("ParseListingType(%q): ok=%v, want %v", c.in, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("ParseListingType(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{in: "beginner", want: LevelBeginner, ok: true},
		{in: "intermediate", want: LevelIntermediate, ok: true},
		{in: "advanced", want: LevelAdvanced, ok: true},
		{in: "expert", ok: false},
		{in: "", ok: false},
	}
	for _, c := range cases {
		got, ok := ParseLevel(c.in)
		if ok != c.ok {
			t.Fatalf("ParseLevel(%q): ok=%v, want %v", c.in, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("ParseLevel(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, known := range Categories() {
		if got, ok := ParseCategory(string(known)); !ok || got != known {
			t.Fatalf("ParseCategory(%q) failed: got=%q ok=%v", known, got, ok)
		}
	}
	if _, ok := ParseCategory("technology"); ok {
		t.Fatalf("category parsing must be case sensitive")
	}
	if _, ok := ParseCategory("Gardening"); ok {
		t.Fatalf("unknown category must not parse")
	}
}

func TestCategoriesCount(t *testing.T) {
	if got := len(Categories()); got != 11 {
		t.Fatalf("expected 11 categories, got %d", got)
	}
}

func TestNarrow_Success(t *testing.T) {
	rec := Record{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Guitar Lessons",
		Description: "Acoustic basics",
		Category:    "Music",
		ListingType: "teach",
		Level:       "beginner",
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	s, err := Narrow(rec)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Category != CategoryMusic || s.ListingType != ListingTypeTeach || s.Level != LevelBeginner {
		t.Fatalf("discriminants not narrowed: %+v", s)
	}
	if s.ID != rec.ID || s.OwnerID != rec.OwnerID || !s.IsActive {
		t.Fatalf("fields not carried over: %+v", s)
	}
}

func TestNarrow_SchemaErrors(t *testing.T) {
	valid := Record{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Title",
		Description: "Desc",
		Category:    "Music",
		ListingType: "teach",
		Level:       "beginner",
	}

	cases := []struct {
		name      string
		mutate    func(r *Record)
		wantField string
	}{
		{name: "missing id", mutate: func(r *Record) { r.ID = uuid.Nil }, wantField: "id"},
		{name: "missing owner", mutate: func(r *Record) { r.OwnerID = uuid.Nil }, wantField: "owner_id"},
		{name: "blank title", mutate: func(r *Record) { r.Title = "  " }, wantField: "title"},
		{name: "blank description", mutate: func(r *Record) { r.Description = "" }, wantField: "description"},
		{name: "unknown category", mutate: func(r *Record) { r.Category = "Gardening" }, wantField: "category"},
		{name: "unknown listing type", mutate: func(r *Record) { r.ListingType = "both" }, wantField: "listing_type"},
		{name: "unknown level", mutate: func(r *Record) { r.Level = "expert" }, wantField: "level"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := valid
			c.mutate(&rec)

			_, err := Narrow(rec)
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("expected SchemaError, got %v", err)
			}
			if se.Field != c.wantField {
				t.Fatalf("expected field %q, got %q", c.wantField, se.Field)
			}
		})
	}
}
