package entity

type Package struct {
	Base
	Name        string   `db:"name"`
	Description *string  `db:"description"`
	Price       float64  `db:"price"`
	Duration    int      `db:"duration"`
	MaxGuests   int      `db:"max_guests"`
	ImageURL    *string  `db:"image_url"`
	Includes    []string `db:"includes"`
	Active      bool     `db:"active"`
}

type PackageStats struct {
	Total    int64
	Active   int64
	Inactive int64
	AvgPrice float64
	MinPrice float64
	MaxPrice float64
}

type PackageFilter struct {
	Search     *string
	PriceRange *string
	Duration   *string
	Guests     *string
	Active     *bool
}
