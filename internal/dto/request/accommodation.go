package request

type CreateAccommodationRequest struct {
	Name           string   `json:"name" validate:"required,max=150"`
	Description    string   `json:"description" validate:"required"`
	Type           string   `json:"type" validate:"required,max=50"`
	Capacity       *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Bedrooms       *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms      *int     `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	Size           *float64 `json:"size,omitempty" validate:"omitempty,gte=0"`
	Price          float64  `json:"price" validate:"gt=0"`
	Features       []string `json:"features,omitempty"`
	Images         []string `json:"images" validate:"required,min=1,dive,required"`
	AvailableRooms *int     `json:"available_rooms,omitempty" validate:"omitempty,min=0"`
	Available      *bool    `json:"available,omitempty"`
}

type UpdateAccommodationRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Description    *string  `json:"description,omitempty"`
	Type           *string  `json:"type,omitempty" validate:"omitempty,max=50"`
	Capacity       *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Bedrooms       *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms      *int     `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	Size           *float64 `json:"size,omitempty" validate:"omitempty,gte=0"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Features       []string `json:"features,omitempty"`
	Images         []string `json:"images,omitempty" validate:"omitempty,min=1,dive,required"`
	AvailableRooms *int     `json:"available_rooms,omitempty" validate:"omitempty,min=0"`
	Available      *bool    `json:"available,omitempty"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type AccommodationListRequest struct {
	PaginatedRequest
	Search    *string
	Type      *string
	Available *bool
}

// AccommodationImageRequest describes an image given by URL or multipart file.
type AccommodationImageRequest struct {
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Title       *string `json:"title,omitempty" validate:"omitempty,max=150"`
	AltText     *string `json:"alt_text,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
}
