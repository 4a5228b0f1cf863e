package request

type GalleryListRequest struct {
	PaginatedRequest
	Category *string
	Search   *string
}

// GalleryUploadRequest holds the form fields sent alongside uploaded files.
type GalleryUploadRequest struct {
	Title       string   `json:"title" validate:"max=150"`
	Category    string   `json:"category" validate:"max=50"`
	AltText     *string  `json:"alt_text,omitempty" validate:"omitempty,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
}

type UpdateGalleryRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=150"`
	Category    *string `json:"category,omitempty" validate:"omitempty,min=1,max=50"`
	AltText     *string `json:"alt_text,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
	Active      *bool   `json:"active,omitempty"`
}

type BlockDatesRequest struct {
	Dates  []string `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
	Reason *string  `json:"reason,omitempty" validate:"omitempty,max=255"`
}

type UpdateBlockedDateRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=255"`
}
