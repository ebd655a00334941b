package skill

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ListingType string

const (
	ListingTypeTeach ListingType = "teach"
	ListingTypeLearn ListingType = "learn"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

type Category string

const (
	CategoryTechnology     Category = "Technology"
	CategoryLanguages      Category = "Languages"
	CategoryArtsAndCrafts  Category = "Arts & Crafts"
	CategoryMusic          Category = "Music"
	CategorySportsFitness  Category = "Sports & Fitness"
	CategoryCooking        Category = "Cooking"
	CategoryBusiness       Category = "Business"
	CategoryWriting        Category = "Writing"
	CategoryPhotography    Category = "Photography"
	CategoryDIYHome        Category = "DIY & Home"
	CategoryOther          Category = "Other"
)

// Skill is a single teach-or-learn listing owned by one user.
type Skill struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Category    Category
	ListingType ListingType
	Level       Level
	IsActive    bool
	CreatedAt   time.Time
}

// Categories returns the fixed category choices in display order.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryLanguages,
		CategoryArtsAndCrafts,
		CategoryMusic,
		CategorySportsFitness,
		CategoryCooking,
		CategoryBusiness,
		CategoryWriting,
		CategoryPhotography,
		CategoryDIYHome,
		CategoryOther,
	}
}

func ParseListingType(raw string) (ListingType, bool) {
	switch ListingType(strings.TrimSpace(raw)) {
	case ListingTypeTeach:
		return ListingTypeTeach, true
	case ListingTypeLearn:
		return ListingTypeLearn, true
	default:
		return "", false
	}
}

func ParseLevel(raw string) (Level, bool) {
	switch Level(strings.TrimSpace(raw)) {
	case LevelBeginner:
		return LevelBeginner, true
	case LevelIntermediate:
		return LevelIntermediate, true
	case LevelAdvanced:
		return LevelAdvanced, true
	default:
		return "", false
	}
}

func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.TrimSpace(raw))
	for _, known := range Categories() {
		if c == known {
			return known, true
		}
	}
	return "", false
}

// SchemaError reports a store record that could not be narrowed to a Skill.
type SchemaError struct {
	Field string
	Value string
}

func (e *SchemaError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("skill record: missing required field %q", e.Field)
	}
	return fmt.Sprintf("skill record: field %q has value %q outside its enumeration", e.Field, e.Value)
}

// Record is a skill row as the store hands it back: discriminants are plain
// strings with no enum discipline.
type Record struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Category    string
	ListingType string
	Level       string
	IsActive    bool
	CreatedAt   time.Time
}

// Narrow validates a raw store record and coerces its discriminants into
// their enumerations. All downstream code receives narrowed entities only.
func Narrow(rec Record) (Skill, error) {
	if rec.ID == uuid.Nil {
		return Skill{}, &SchemaError{Field: "id"}
	}
	if rec.OwnerID == uuid.Nil {
		return Skill{}, &SchemaError{Field: "owner_id"}
	}
	if strings.TrimSpace(rec.Title) == "" {
		return Skill{}, &SchemaError{Field: "title"}
	}
	if strings.TrimSpace(rec.Description) == "" {
		return Skill{}, &SchemaError{Field: "description"}
	}

	category, ok := ParseCategory(rec.Category)
	if !ok {
		return Skill{}, &SchemaError{Field: "category", Value: rec.Category}
	}
	listingType, ok := ParseListingType(rec.ListingType)
	if !ok {
		return Skill{}, &SchemaError{Field: "listing_type", Value: rec.ListingType}
	}
	level, ok := ParseLevel(rec.Level)
	if !ok {
		return Skill{}, &SchemaError{Field: "level", Value: rec.Level}
	}

	return Skill{
		ID:          rec.ID,
		OwnerID:     rec.OwnerID,
		Title:       rec.Title,
		Description: rec.Description,
		Category:    category,
		ListingType: listingType,
		Level:       level,
		IsActive:    rec.IsActive,
		CreatedAt:   rec.CreatedAt,
	}, nil
}
