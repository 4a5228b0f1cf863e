package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"
	"resort-admin/internal/dto/response"
	"resort-admin/pkg/database"
	"resort-admin/pkg/storage"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AccommodationService interface {
	GetAccommodations(ctx context.Context, req *request.AccommodationListRequest) (*response.PaginatedResponse[response.AccommodationResponse], error)
	GetAccommodationByID(ctx context.Context, accommodationID string) (*response.AccommodationResponse, error)
	GetBookings(ctx context.Context, accommodationID string, req *request.AccommodationBookingsRequest) ([]response.BookingResponse, error)
	GetStats(ctx context.Context) (*response.AccommodationStatsResponse, error)

	CreateAccommodation(ctx context.Context, req *request.CreateAccommodationRequest) (*response.AccommodationResponse, error)
	UpdateAccommodation(ctx context.Context, accommodationID string, req *request.UpdateAccommodationRequest) (*response.AccommodationResponse, error)
	SetAvailability(ctx context.Context, accommodationID string, req *request.SetAvailabilityRequest) (*response.AccommodationResponse, error)
	DeleteAccommodation(ctx context.Context, accommodationID string) error
	UploadImage(ctx context.Context, accommodationID string, req *request.AccommodationImageRequest, file *multipart.FileHeader) (*response.GalleryImageResponse, error)
}

type accommodationService struct {
	repo  *repository.Repository
	db    database.TxBeginner
	files storage.FileStore
	log   *zap.Logger
	now   func() time.Time
}

func NewAccommodationService(repo *repository.Repository, db database.TxBeginner, files storage.FileStore, log *zap.Logger) AccommodationService {
	return &accommodationService{
		repo:  repo,
		db:    db,
		files: files,
		log:   log.With(zap.String("service", "accommodation")),
		now:   time.Now,
	}
}

func (s *accommodationService) GetAccommodations(ctx context.Context, req *request.AccommodationListRequest) (*response.PaginatedResponse[response.AccommodationResponse], error) {
	filter := entity.AccommodationFilter{
		Search:    req.Search,
		Type:      req.Type,
		Available: req.Available,
	}

	list, err := s.repo.Accommodation.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get accommodations",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get accommodations: %w", err)
	}

	total, err := s.repo.Accommodation.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count accommodations: %w", err)
	}

	data := make([]response.AccommodationResponse, 0, len(list))
	for _, acc := range list {
		data = append(data, response.AccommodationToResponse(acc))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *accommodationService) find(ctx context.Context, accommodationID string) (*entity.Accommodation, error) {
	id, err := parseID(accommodationID, "accommodation")
	if err != nil {
		return nil, err
	}

	acc, err := s.repo.Accommodation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find accommodation: %w", err)
	}
	if acc == nil {
		return nil, notFound("accommodation")
	}
	return acc, nil
}

func (s *accommodationService) GetAccommodationByID(ctx context.Context, accommodationID string) (*response.AccommodationResponse, error) {
	acc, err := s.find(ctx, accommodationID)
	if err != nil {
		return nil, err
	}

	resp := response.AccommodationToResponse(acc)
	return &resp, nil
}

func (s *accommodationService) GetBookings(ctx context.Context, accommodationID string, req *request.AccommodationBookingsRequest) ([]response.BookingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	acc, err := s.find(ctx, accommodationID)
	if err != nil {
		return nil, err
	}

	filter, err := bookingFilterFrom(nil, req.Status, nil, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByAccommodation(ctx, acc.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("get accommodation bookings: %w", err)
	}

	return response.BookingSummariesToResponse(bookings), nil
}

func (s *accommodationService) GetStats(ctx context.Context) (*response.AccommodationStatsResponse, error) {
	stats, err := s.repo.Accommodation.Stats(ctx)
	if err != nil {
		s.log.Error("Failed to get accommodation stats", zap.Error(err))
		return nil, fmt.Errorf("get accommodation stats: %w", err)
	}

	resp := response.AccommodationStatsToResponse(stats)
	return &resp, nil
}

func (s *accommodationService) CreateAccommodation(ctx context.Context, req *request.CreateAccommodationRequest) (*response.AccommodationResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create accommodation validation failed", zap.Error(err))
		return nil, err
	}

	amenities := entity.Amenities{
		Type:     req.Type,
		Features: req.Features,
		Images:   req.Images,
		Version:  1,
	}
	if req.Capacity != nil {
		amenities.Capacity = *req.Capacity
	}
	if req.Bedrooms != nil {
		amenities.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		amenities.Bathrooms = *req.Bathrooms
	}
	if req.Size != nil {
		amenities.Size = *req.Size
	}
	amenities = amenities.WithDefaults(nil)

	rooms := entity.DefaultAvailableRooms
	if req.AvailableRooms != nil {
		rooms = *req.AvailableRooms
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	acc := &entity.Accommodation{
		Base:           entity.NewBase(s.now()),
		Title:          req.Name,
		Description:    req.Description,
		Price:          req.Price,
		AvailableRooms: rooms,
		Amenities:      amenities,
		ImageURL:       amenities.MainImage(),
		Available:      available,
	}

	if err := s.repo.Accommodation.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("create accommodation: %w", err)
	}

	s.log.Info("Accommodation created",
		zap.String("accommodation_id", acc.ID.String()),
		zap.String("title", acc.Title),
	)

	resp := response.AccommodationToResponse(acc)
	return &resp, nil
}

func (s *accommodationService) UpdateAccommodation(ctx context.Context, accommodationID string, req *request.UpdateAccommodationRequest) (*response.AccommodationResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update accommodation validation failed", zap.Error(err))
		return nil, err
	}

	patch := entity.AmenitiesPatch{
		Type:      req.Type,
		Capacity:  req.Capacity,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		Size:      req.Size,
		Features:  req.Features,
		Images:    req.Images,
	}

	if patch.IsEmpty() && req.Name == nil && req.Description == nil && req.Price == nil &&
		req.AvailableRooms == nil && req.Available == nil {
		return nil, invalid("no fields to update")
	}

	acc, err := s.find(ctx, accommodationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		acc.Title = *req.Name
	}
	if req.Description != nil {
		acc.Description = *req.Description
	}
	if req.Price != nil {
		acc.Price = *req.Price
	}
	if req.AvailableRooms != nil {
		acc.AvailableRooms = *req.AvailableRooms
	}
	if req.Available != nil {
		acc.Available = *req.Available
	}
	if !patch.IsEmpty() {
		acc.Amenities = acc.Amenities.Merge(patch)
		if patch.Images != nil {
			acc.ImageURL = acc.Amenities.MainImage()
		}
	}
	acc.UpdatedAt = s.now()

	if err := s.repo.Accommodation.Update(ctx, acc); err != nil {
		return nil, fmt.Errorf("update accommodation: %w", err)
	}

	s.log.Info("Accommodation updated",
		zap.String("accommodation_id", acc.ID.String()),
		zap.Int("version", acc.Amenities.Version),
	)

	resp := response.AccommodationToResponse(acc)
	return &resp, nil
}

func (s *accommodationService) SetAvailability(ctx context.Context, accommodationID string, req *request.SetAvailabilityRequest) (*response.AccommodationResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	acc, err := s.find(ctx, accommodationID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Accommodation.SetAvailability(ctx, acc.ID, *req.Available); err != nil {
		return nil, fmt.Errorf("set accommodation availability: %w", err)
	}
	acc.Available = *req.Available

	s.log.Info("Accommodation availability changed",
		zap.String("accommodation_id", acc.ID.String()),
		zap.Bool("available", acc.Available),
	)

	resp := response.AccommodationToResponse(acc)
	return &resp, nil
}

// DeleteAccommodation locks the inventory row first, so a booking created
// concurrently either commits before the count or waits for the delete.
func (s *accommodationService) DeleteAccommodation(ctx context.Context, accommodationID string) error {
	id, err := parseID(accommodationID, "accommodation")
	if err != nil {
		return err
	}

	err = database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := s.repo.Accommodation.LockInventoryTx(ctx, tx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound("accommodation")
			}
			return err
		}

		active, err := s.repo.Booking.CountActiveForAccommodationTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if active > 0 {
			s.log.Warn("Refusing to delete accommodation with active bookings",
				zap.String("accommodation_id", id.String()),
				zap.Int64("active_bookings", active),
			)
			return conflict("cannot delete accommodation with %d active booking(s)", active)
		}

		return s.repo.Accommodation.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, ErrConflict) || errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete accommodation: %w", err)
	}

	s.log.Info("Accommodation deleted", zap.String("accommodation_id", id.String()))
	return nil
}

func (s *accommodationService) UploadImage(ctx context.Context, accommodationID string, req *request.AccommodationImageRequest, file *multipart.FileHeader) (*response.GalleryImageResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	acc, err := s.find(ctx, accommodationID)
	if err != nil {
		return nil, err
	}

	var imageURL string
	switch {
	case file != nil:
		stored, err := s.files.Save(entity.CategoryAccommodation, file)
		if err != nil {
			return nil, storageError(err)
		}
		imageURL = stored.URL
	case req.ImageURL != nil && *req.ImageURL != "":
		imageURL = *req.ImageURL
	default:
		return nil, invalid("an image file or image_url is required")
	}

	title := acc.Title
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}

	img := &entity.GalleryImage{
		Base:        entity.NewBase(s.now()),
		Title:       title,
		Category:    entity.CategoryAccommodation,
		ImageURL:    imageURL,
		AltText:     req.AltText,
		Description: req.Description,
		Active:      true,
	}

	if err := s.repo.Gallery.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("create accommodation image: %w", err)
	}

	s.log.Info("Accommodation image added",
		zap.String("accommodation_id", acc.ID.String()),
		zap.String("image_url", imageURL),
	)

	resp := response.GalleryImageToResponse(img)
	return &resp, nil
}
