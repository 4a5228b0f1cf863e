package entity

// Service is a bookable resort service such as a spa treatment.
type Service struct {
	Base
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Image       string  `db:"image"`
	Price       float64 `db:"price"`
	Duration    int     `db:"duration"` // minutes
	Available   bool    `db:"available"`
}

type ServiceFilter struct {
	Search     *string
	PriceRange *string
	Available  *bool
	SortBy     string
	SortOrder  string
}
