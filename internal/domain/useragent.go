package domain

import "slices"

// Category is the coarse device class a user agent record is filed under.
type Category string

const (
	CategoryDesktop Category = "desktop"
	CategoryMobile  Category = "mobile"
	CategoryTablet  Category = "tablet"
	CategoryBot     Category = "bot"
)

// Categories lists the record categories in display order.
var Categories = []Category{CategoryDesktop, CategoryMobile, CategoryTablet, CategoryBot}

// Valid reports whether c is one of the known record categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// UserAgent is one catalog entry: a literal user-agent string plus the
// classification shown next to it.
//
// Only ID carries an invariant (unique within a collection). Every other
// field is free text and may be empty.
type UserAgent struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the stable identifier, never reused.
	ID string `json:"id"`

	// Name is the display label.
	// Example: "Chrome 135 (Windows)"
	Name string `json:"name"`

	// Value is the literal user-agent header payload.
	Value string `json:"value"`

	// ─────────────────────────────
	// Classification
	// ─────────────────────────────

	Browser string `json:"browser"`
	OS      string `json:"os"`

	// Device is the device family label.
	// Fixtures use "Desktop", "Mobile", "Tablet" and "Bot".
	Device string `json:"device"`

	// Category should agree with Device but is not validated against it.
	Category Category `json:"category"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// LastUpdated is an ISO 8601 calendar date (YYYY-MM-DD).
	LastUpdated string `json:"lastUpdated"`

	// Popularity is a share percentage in [0, 100].
	Popularity float64 `json:"popularity"`

	Description string `json:"description"`
}

// Clone returns a shallow copy; UserAgent holds no reference fields.
func (ua *UserAgent) Clone() *UserAgent {
	if ua == nil {
		return nil
	}
	c := *ua
	return &c
}
