package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"
	"resort-admin/internal/dto/response"
	"resort-admin/pkg/storage"

	"go.uber.org/zap"
)

// MaxUploadFiles caps the files accepted by one gallery upload.
const MaxUploadFiles = 10

type GalleryService interface {
	GetImages(ctx context.Context, req *request.GalleryListRequest) (*response.PaginatedResponse[response.GalleryImageResponse], error)
	GetImageByID(ctx context.Context, imageID string) (*response.GalleryImageResponse, error)
	GetStats(ctx context.Context) (*response.GalleryStatsResponse, error)

	UploadImages(ctx context.Context, req *request.GalleryUploadRequest, files []*multipart.FileHeader) (*response.GalleryUploadResponse, error)
	UpdateImage(ctx context.Context, imageID string, req *request.UpdateGalleryRequest) (*response.GalleryImageResponse, error)
	DeleteImage(ctx context.Context, imageID string) error

	UploadFile(ctx context.Context, folder string, file *multipart.FileHeader) (*response.UploadResponse, error)
}

type galleryService struct {
	repo  *repository.Repository
	files storage.FileStore
	log   *zap.Logger
	now   func() time.Time
}

func NewGalleryService(repo *repository.Repository, files storage.FileStore, log *zap.Logger) GalleryService {
	return &galleryService{
		repo:  repo,
		files: files,
		log:   log.With(zap.String("service", "gallery")),
		now:   time.Now,
	}
}

// storageError turns upload rejections into validation errors.
func storageError(err error) error {
	if errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrTooLarge) || errors.Is(err, storage.ErrEmpty) {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return fmt.Errorf("store file: %w", err)
}

func (s *galleryService) GetImages(ctx context.Context, req *request.GalleryListRequest) (*response.PaginatedResponse[response.GalleryImageResponse], error) {
	filter := entity.GalleryFilter{Category: req.Category, Search: req.Search}

	images, err := s.repo.Gallery.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get gallery images", zap.Error(err))
		return nil, fmt.Errorf("get gallery images: %w", err)
	}

	total, err := s.repo.Gallery.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count gallery images: %w", err)
	}

	return response.NewPaginatedResponse(response.GalleryImagesToResponse(images), req.Page, req.Limit(), total), nil
}

func (s *galleryService) find(ctx context.Context, imageID string) (*entity.GalleryImage, error) {
	id, err := parseID(imageID, "image")
	if err != nil {
		return nil, err
	}

	img, err := s.repo.Gallery.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find gallery image: %w", err)
	}
	if img == nil {
		return nil, notFound("image")
	}
	return img, nil
}

func (s *galleryService) GetImageByID(ctx context.Context, imageID string) (*response.GalleryImageResponse, error) {
	img, err := s.find(ctx, imageID)
	if err != nil {
		return nil, err
	}

	resp := response.GalleryImageToResponse(img)
	return &resp, nil
}

func (s *galleryService) GetStats(ctx context.Context) (*response.GalleryStatsResponse, error) {
	counts, err := s.repo.Gallery.CountByCategory(ctx)
	if err != nil {
		s.log.Error("Failed to get gallery stats", zap.Error(err))
		return nil, fmt.Errorf("get gallery stats: %w", err)
	}

	resp := &response.GalleryStatsResponse{
		Categories: make([]response.CategoryCountResponse, 0, len(counts)),
	}
	for _, c := range counts {
		resp.Total += c.Count
		resp.Categories = append(resp.Categories, response.CategoryCountResponse{Category: c.Category, Count: c.Count})
	}
	return resp, nil
}

func imageTitle(title, source string, index, count int) string {
	if title == "" {
		base := path.Base(source)
		return strings.TrimSuffix(base, path.Ext(base))
	}
	if count > 1 {
		return fmt.Sprintf("%s %d", title, index+1)
	}
	return title
}

func (s *galleryService) UploadImages(ctx context.Context, req *request.GalleryUploadRequest, files []*multipart.FileHeader) (*response.GalleryUploadResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Gallery upload validation failed", zap.Error(err))
		return nil, err
	}

	if len(files) == 0 && len(req.ImageURLs) == 0 {
		return nil, invalid("no images provided")
	}
	if len(files) > MaxUploadFiles {
		return nil, invalid("at most %d files per upload", MaxUploadFiles)
	}

	category := entity.SanitizeCategory(req.Category)

	urls := make([]string, 0, len(files)+len(req.ImageURLs))
	sources := make([]string, 0, cap(urls))
	for _, fh := range files {
		stored, err := s.files.Save(category, fh)
		if err != nil {
			s.rollbackFiles(urls)
			return nil, storageError(err)
		}
		urls = append(urls, stored.URL)
		sources = append(sources, fh.Filename)
	}
	uploaded := len(urls)
	for _, u := range req.ImageURLs {
		urls = append(urls, u)
		sources = append(sources, u)
	}

	now := s.now()
	images := make([]*entity.GalleryImage, 0, len(urls))
	for i, u := range urls {
		img := &entity.GalleryImage{
			Base:        entity.NewBase(now),
			Title:       imageTitle(req.Title, sources[i], i, len(urls)),
			Category:    category,
			ImageURL:    u,
			AltText:     req.AltText,
			Description: req.Description,
			SortOrder:   i,
			Active:      true,
		}
		if err := s.repo.Gallery.Create(ctx, img); err != nil {
			s.rollbackFiles(urls[:uploaded])
			return nil, fmt.Errorf("create gallery image: %w", err)
		}
		images = append(images, img)
	}

	s.log.Info("Gallery images uploaded",
		zap.String("category", category),
		zap.Int("files", uploaded),
		zap.Int("urls", len(req.ImageURLs)),
	)

	return &response.GalleryUploadResponse{
		Images: response.GalleryImagesToResponse(images),
		Count:  len(images),
	}, nil
}

// rollbackFiles removes already stored files after a failed upload.
func (s *galleryService) rollbackFiles(urls []string) {
	for _, u := range urls {
		if err := s.files.Delete(u); err != nil {
			s.log.Warn("Failed to remove stored file", zap.String("url", u), zap.Error(err))
		}
	}
}

func (s *galleryService) UpdateImage(ctx context.Context, imageID string, req *request.UpdateGalleryRequest) (*response.GalleryImageResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if req.Title == nil && req.Category == nil && req.AltText == nil && req.Description == nil &&
		req.SortOrder == nil && req.Active == nil {
		return nil, invalid("no fields to update")
	}

	img, err := s.find(ctx, imageID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		img.Title = *req.Title
	}
	if req.Category != nil {
		img.Category = entity.SanitizeCategory(*req.Category)
	}
	if req.AltText != nil {
		img.AltText = req.AltText
	}
	if req.Description != nil {
		img.Description = req.Description
	}
	if req.SortOrder != nil {
		img.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		img.Active = *req.Active
	}
	img.UpdatedAt = s.now()

	if err := s.repo.Gallery.Update(ctx, img); err != nil {
		return nil, fmt.Errorf("update gallery image: %w", err)
	}

	s.log.Info("Gallery image updated", zap.String("image_id", img.ID.String()))

	resp := response.GalleryImageToResponse(img)
	return &resp, nil
}

func (s *galleryService) DeleteImage(ctx context.Context, imageID string) error {
	img, err := s.find(ctx, imageID)
	if err != nil {
		return err
	}

	if err := s.repo.Gallery.Delete(ctx, img.ID); err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}

	// the row is gone either way; a leftover file is only logged
	if err := s.files.Delete(img.ImageURL); err != nil {
		s.log.Warn("Failed to delete image file", zap.String("url", img.ImageURL), zap.Error(err))
	}

	s.log.Info("Gallery image deleted", zap.String("image_id", img.ID.String()))
	return nil
}

func (s *galleryService) UploadFile(ctx context.Context, folder string, file *multipart.FileHeader) (*response.UploadResponse, error) {
	if file == nil {
		return nil, invalid("no file uploaded")
	}

	stored, err := s.files.Save(entity.SanitizeCategory(folder), file)
	if err != nil {
		return nil, storageError(err)
	}

	return &response.UploadResponse{
		URL:      stored.URL,
		Filename: stored.Filename,
		Size:     stored.Size,
		MimeType: stored.MimeType,
	}, nil
}
