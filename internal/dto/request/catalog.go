package request

type CreatePackageRequest struct {
	Name        string   `json:"name" validate:"required,max=150"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"gt=0"`
	Duration    int      `json:"duration" validate:"required,min=1"`
	MaxGuests   int      `json:"max_guests" validate:"required,min=1"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Includes    []string `json:"includes,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type UpdatePackageRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,min=1"`
	MaxGuests   *int     `json:"max_guests,omitempty" validate:"omitempty,min=1"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Includes    []string `json:"includes,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type PackageListRequest struct {
	Search     *string
	PriceRange *string `validate:"omitempty,oneof=budget mid luxury"`
	Duration   *string `validate:"omitempty,oneof=short medium long"`
	Guests     *string `validate:"omitempty,oneof=couple family group"`
	Active     *bool
}

type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required,max=150"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image" validate:"required,max=500"`
	Price       float64 `json:"price" validate:"gt=0"`
	Duration    int     `json:"duration" validate:"gt=0"`
	Available   *bool   `json:"available,omitempty"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty" validate:"omitempty,max=500"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Available   *bool    `json:"available,omitempty"`
}

type ServiceListRequest struct {
	Search       *string
	PriceRange   *string `validate:"omitempty,oneof=budget mid premium"`
	Availability *string `validate:"omitempty,oneof=available unavailable"`
	SortBy       string  `validate:"omitempty,oneof=name price duration created_at"`
	SortOrder    string  `validate:"omitempty,oneof=ASC DESC asc desc"`
}
