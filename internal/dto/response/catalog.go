package response

import (
	"time"

	"resort-admin/internal/data/entity"
)

type AccommodationResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Type           string    `json:"type"`
	Capacity       int       `json:"capacity"`
	Bedrooms       int       `json:"bedrooms"`
	Bathrooms      int       `json:"bathrooms"`
	Size           float64   `json:"size"`
	Price          float64   `json:"price"`
	Features       []string  `json:"features"`
	Images         []string  `json:"images"`
	ImageURL       *string   `json:"image_url,omitempty"`
	AvailableRooms int       `json:"available_rooms"`
	Available      bool      `json:"available"`
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type TypeCountResponse struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type AccommodationStatsResponse struct {
	Total          int64               `json:"total"`
	Available      int64               `json:"available"`
	Unavailable    int64               `json:"unavailable"`
	Occupied       int64               `json:"occupied"`
	MonthlyRevenue float64             `json:"monthly_revenue"`
	PopularTypes   []TypeCountResponse `json:"popular_types"`
}

type PackageResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	MaxGuests   int       `json:"max_guests"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Includes    []string  `json:"includes"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PackageStatsResponse struct {
	Total    int64   `json:"total"`
	Active   int64   `json:"active"`
	Inactive int64   `json:"inactive"`
	AvgPrice float64 `json:"avg_price"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

type ToggleResponse struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Helper converters
func AccommodationToResponse(acc *entity.Accommodation) AccommodationResponse {
	amenities := acc.Amenities.WithDefaults(acc.ImageURL)
	return AccommodationResponse{
		ID:             acc.ID.String(),
		Name:           acc.Title,
		Description:    acc.Description,
		Type:           amenities.Type,
		Capacity:       amenities.Capacity,
		Bedrooms:       amenities.Bedrooms,
		Bathrooms:      amenities.Bathrooms,
		Size:           amenities.Size,
		Price:          acc.Price,
		Features:       amenities.Features,
		Images:         amenities.Images,
		ImageURL:       acc.ImageURL,
		AvailableRooms: acc.AvailableRooms,
		Available:      acc.Available,
		Version:        amenities.Version,
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.UpdatedAt,
	}
}

func AccommodationStatsToResponse(s *entity.AccommodationStats) AccommodationStatsResponse {
	types := make([]TypeCountResponse, 0, len(s.PopularTypes))
	for _, t := range s.PopularTypes {
		types = append(types, TypeCountResponse{Type: t.Type, Count: t.Count})
	}
	return AccommodationStatsResponse{
		Total:          s.Total,
		Available:      s.Available,
		Unavailable:    s.Total - s.Available,
		Occupied:       s.Occupied,
		MonthlyRevenue: s.MonthlyRevenue,
		PopularTypes:   types,
	}
}

func PackageToResponse(p *entity.Package) PackageResponse {
	includes := p.Includes
	if includes == nil {
		includes = []string{}
	}
	return PackageResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Duration:    p.Duration,
		MaxGuests:   p.MaxGuests,
		ImageURL:    p.ImageURL,
		Includes:    includes,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func PackageStatsToResponse(s *entity.PackageStats) PackageStatsResponse {
	return PackageStatsResponse{
		Total:    s.Total,
		Active:   s.Active,
		Inactive: s.Inactive,
		AvgPrice: s.AvgPrice,
		MinPrice: s.MinPrice,
		MaxPrice: s.MaxPrice,
	}
}

func ServiceToResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Image:       s.Image,
		Price:       s.Price,
		Duration:    s.Duration,
		Available:   s.Available,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
