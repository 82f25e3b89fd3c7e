package memory

import (
	"encoding/json"
	"fmt"
)

// Category labels one of the fixed set of memory prompts. The set is closed:
// decoding an unknown label fails instead of silently accepting it.
type Category string

const (
	// CategoryPhotobook collects photo-backed memories; it is the only
	// category that may carry an image.
	CategoryPhotobook Category = "Family Photobook"
	// CategorySoundtrack collects the songs of the year.
	CategorySoundtrack Category = "The Soundtrack"
	// CategoryKeywords collects the words that defined the year.
	CategoryKeywords Category = "Keywords of 2025"
	// CategoryMVP collects the family member of the year.
	CategoryMVP Category = "MVP of 2025"
	// CategoryWin collects the biggest win of the year.
	CategoryWin Category = "Biggest Win"
	// CategoryMeal collects the best meal of the year.
	CategoryMeal Category = "Best Meal"
	// CategoryPurchase collects the best purchase of the year.
	CategoryPurchase Category = "Best Purchase"
	// CategoryGoal collects a goal for the coming year.
	CategoryGoal Category = "2026 Goal"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryPhotobook,
		CategorySoundtrack,
		CategoryKeywords,
		CategoryMVP,
		CategoryWin,
		CategoryMeal,
		CategoryPurchase,
		CategoryGoal,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a label into a Category, rejecting unknown labels.
func ParseCategory(label string) (Category, error) {
	c := Category(label)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", label)
	}
	return c, nil
}

// UnmarshalJSON enforces the closed set during decoding so an edited or
// corrupted slot cannot smuggle in a category outside the enumeration.
func (c *Category) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	parsed, err := ParseCategory(label)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Record is one persisted memory entry. Field names and types match the
// persistent slot encoding exactly: id, category, content, author, timestamp
// (epoch milliseconds) and an optional data-URL imageUrl.
type Record struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Timestamp int64    `json:"timestamp"`
	ImageURL  string   `json:"imageUrl,omitempty"`
}

// Draft is a record as submitted by a contributor, before the store assigns
// an id and timestamp.
type Draft struct {
	Category Category
	Content  string
	Author   string
	ImageURL string
}

// ValidationError reports a draft field that failed the save preconditions.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid memory: %s %s", e.Field, e.Message)
}

// Validate checks the save preconditions: non-empty content and author, and
// a category from the closed set. Callers are expected to run this gate
// before handing the draft to Store.Append.
func (d Draft) Validate() error {
	if !d.Category.Valid() {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("%q is not a known category", string(d.Category))}
	}
	if d.Content == "" {
		return &ValidationError{Field: "content", Message: "must not be empty"}
	}
	if d.Author == "" {
		return &ValidationError{Field: "author", Message: "must not be empty"}
	}
	return nil
}
