package response

import (
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/utils"
)

type GalleryImageResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	AltText     *string   `json:"alt_text,omitempty"`
	Description *string   `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GalleryUploadResponse struct {
	Images []GalleryImageResponse `json:"images"`
	Count  int                    `json:"count"`
}

type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type GalleryStatsResponse struct {
	Total      int64                   `json:"total"`
	Categories []CategoryCountResponse `json:"categories"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type BlockedDateResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type BlockDatesResponse struct {
	Inserted   []string `json:"inserted"`
	Duplicates []string `json:"duplicates"`
}

// Helper converters
func GalleryImageToResponse(g *entity.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:          g.ID.String(),
		Title:       g.Title,
		Category:    g.Category,
		ImageURL:    g.ImageURL,
		AltText:     g.AltText,
		Description: g.Description,
		SortOrder:   g.SortOrder,
		Active:      g.Active,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func GalleryImagesToResponse(list []*entity.GalleryImage) []GalleryImageResponse {
	out := make([]GalleryImageResponse, 0, len(list))
	for _, g := range list {
		out = append(out, GalleryImageToResponse(g))
	}
	return out
}

func BlockedDateToResponse(d *entity.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		ID:        d.ID.String(),
		Date:      d.Date.Format(utils.DateLayout),
		Reason:    d.Reason,
		CreatedAt: d.CreatedAt,
	}
}
