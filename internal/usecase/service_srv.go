package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"
	"resort-admin/internal/dto/response"

	"go.uber.org/zap"
)

// ServiceCatalog manages bookable resort services (spa, tours and the like).
type ServiceCatalog interface {
	GetServices(ctx context.Context, req *request.ServiceListRequest) ([]response.ServiceResponse, error)
	GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error)

	CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID string) error
}

type serviceCatalog struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewServiceCatalog(repo *repository.Repository, log *zap.Logger) ServiceCatalog {
	return &serviceCatalog{
		repo: repo,
		log:  log.With(zap.String("service", "service_catalog")),
		now:  time.Now,
	}
}

func (s *serviceCatalog) GetServices(ctx context.Context, req *request.ServiceListRequest) ([]response.ServiceResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	filter := entity.ServiceFilter{
		Search:     req.Search,
		PriceRange: req.PriceRange,
		SortBy:     req.SortBy,
		SortOrder:  strings.ToUpper(req.SortOrder),
	}
	if req.Availability != nil {
		available := *req.Availability == "available"
		filter.Available = &available
	}

	services, err := s.repo.Service.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get services", zap.Error(err))
		return nil, fmt.Errorf("get services: %w", err)
	}

	data := make([]response.ServiceResponse, 0, len(services))
	for _, svc := range services {
		data = append(data, response.ServiceToResponse(svc))
	}
	return data, nil
}

func (s *serviceCatalog) find(ctx context.Context, serviceID string) (*entity.Service, error) {
	id, err := parseID(serviceID, "service")
	if err != nil {
		return nil, err
	}

	svc, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	if svc == nil {
		return nil, notFound("service")
	}
	return svc, nil
}

func (s *serviceCatalog) GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	svc, err := s.find(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}

func (s *serviceCatalog) CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create service validation failed", zap.Error(err))
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	svc := &entity.Service{
		Base:        entity.NewBase(s.now()),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Duration:    req.Duration,
		Available:   available,
	}

	if err := s.repo.Service.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created", zap.String("service_id", svc.ID.String()), zap.String("name", svc.Name))

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}

func (s *serviceCatalog) UpdateService(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update service validation failed", zap.Error(err))
		return nil, err
	}

	if req.Name == nil && req.Description == nil && req.Image == nil && req.Price == nil &&
		req.Duration == nil && req.Available == nil {
		return nil, invalid("no fields to update")
	}

	svc, err := s.find(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Image != nil {
		svc.Image = *req.Image
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if req.Available != nil {
		svc.Available = *req.Available
	}
	svc.UpdatedAt = s.now()

	if err := s.repo.Service.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	s.log.Info("Service updated", zap.String("service_id", svc.ID.String()))

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}

func (s *serviceCatalog) DeleteService(ctx context.Context, serviceID string) error {
	id, err := parseID(serviceID, "service")
	if err != nil {
		return err
	}

	if err := s.repo.Service.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	s.log.Info("Service deleted", zap.String("service_id", id.String()))
	return nil
}
