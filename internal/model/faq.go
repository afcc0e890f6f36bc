package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownCategory = errors.New("unknown category")

// Category groups FAQ entries by topic
type Category string

const (
	CategoryAdmission Category = "admission"
	CategoryAcademic  Category = "academic"
	CategoryFacility  Category = "facility"
	CategoryGeneral   Category = "general"
	CategoryOther     Category = "other"
	CategoryCourses   Category = "courses"
	CategoryFaculty   Category = "faculty"
	CategoryHostel    Category = "hostel"
	CategoryFees      Category = "fees"
	CategoryPlacement Category = "placement"
	CategoryContact   Category = "contact"
)

var categories = map[Category]bool{
	CategoryAdmission: true,
	CategoryAcademic:  true,
	CategoryFacility:  true,
	CategoryGeneral:   true,
	CategoryOther:     true,
	CategoryCourses:   true,
	CategoryFaculty:   true,
	CategoryHostel:    true,
	CategoryFees:      true,
	CategoryPlacement: true,
	CategoryContact:   true,
}

// ParseCategory validates a raw category value. An empty value maps to
// CategoryGeneral; any other unknown value is rejected.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryGeneral, nil
	}
	c := Category(s)
	if !categories[c] {
		return "", fmt.Errorf("%w %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// FAQEntry is a curated question/answer pair in the corpus
type FAQEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Question  string    `json:"question" bson:"question"`
	Answer    string    `json:"answer" bson:"answer"`
	Keywords  []string  `json:"keywords" bson:"keywords"`
	Category  Category  `json:"category" bson:"category"`
	Priority  int       `json:"priority" bson:"priority"` // 0-10, reserved; matching does not read it
	IsActive  bool      `json:"isActive" bson:"isActive"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
