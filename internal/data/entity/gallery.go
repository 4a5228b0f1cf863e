package entity

import "regexp"

const (
	CategoryAll           = "all"
	CategoryGeneral       = "general"
	CategoryAccommodation = "accommodation"
)

type GalleryImage struct {
	Base
	Title       string  `db:"title"`
	Category    string  `db:"category"`
	ImageURL    string  `db:"image_url"`
	AltText     *string `db:"alt_text"`
	Description *string `db:"description"`
	SortOrder   int     `db:"sort_order"`
	Active      bool    `db:"active"`
}

type GalleryFilter struct {
	Category *string
	Search   *string
}

type CategoryCount struct {
	Category string
	Count    int64
}

var unsafeCategoryChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// SanitizeCategory keeps a category safe to use as a directory name.
func SanitizeCategory(category string) string {
	safe := unsafeCategoryChars.ReplaceAllString(category, "")
	if safe == "" {
		return CategoryGeneral
	}
	return safe
}
