package usecase

import (
	"context"
	"fmt"
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/request"
	"resort-admin/internal/dto/response"

	"go.uber.org/zap"
)

type PackageService interface {
	GetPackages(ctx context.Context, req *request.PackageListRequest) ([]response.PackageResponse, error)
	GetPackageByID(ctx context.Context, packageID string) (*response.PackageResponse, error)
	GetStats(ctx context.Context) (*response.PackageStatsResponse, error)

	CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error)
	UpdatePackage(ctx context.Context, packageID string, req *request.UpdatePackageRequest) (*response.PackageResponse, error)
	TogglePackage(ctx context.Context, packageID string) (*response.ToggleResponse, error)
	DeletePackage(ctx context.Context, packageID string) error
}

type packageService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewPackageService(repo *repository.Repository, log *zap.Logger) PackageService {
	return &packageService{
		repo: repo,
		log:  log.With(zap.String("service", "package")),
		now:  time.Now,
	}
}

func (s *packageService) GetPackages(ctx context.Context, req *request.PackageListRequest) ([]response.PackageResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	packages, err := s.repo.Package.FindAll(ctx, entity.PackageFilter{
		Search:     req.Search,
		PriceRange: req.PriceRange,
		Duration:   req.Duration,
		Guests:     req.Guests,
		Active:     req.Active,
	})
	if err != nil {
		s.log.Error("Failed to get packages", zap.Error(err))
		return nil, fmt.Errorf("get packages: %w", err)
	}

	data := make([]response.PackageResponse, 0, len(packages))
	for _, p := range packages {
		data = append(data, response.PackageToResponse(p))
	}
	return data, nil
}

func (s *packageService) find(ctx context.Context, packageID string) (*entity.Package, error) {
	id, err := parseID(packageID, "package")
	if err != nil {
		return nil, err
	}

	pkg, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil {
		return nil, notFound("package")
	}
	return pkg, nil
}

func (s *packageService) GetPackageByID(ctx context.Context, packageID string) (*response.PackageResponse, error) {
	pkg, err := s.find(ctx, packageID)
	if err != nil {
		return nil, err
	}

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) GetStats(ctx context.Context) (*response.PackageStatsResponse, error) {
	stats, err := s.repo.Package.Stats(ctx)
	if err != nil {
		s.log.Error("Failed to get package stats", zap.Error(err))
		return nil, fmt.Errorf("get package stats: %w", err)
	}

	resp := response.PackageStatsToResponse(stats)
	return &resp, nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create package validation failed", zap.Error(err))
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	includes := req.Includes
	if includes == nil {
		includes = []string{}
	}

	pkg := &entity.Package{
		Base:        entity.NewBase(s.now()),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		MaxGuests:   req.MaxGuests,
		ImageURL:    req.ImageURL,
		Includes:    includes,
		Active:      active,
	}

	if err := s.repo.Package.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("Package created",
		zap.String("package_id", pkg.ID.String()),
		zap.String("name", pkg.Name),
	)

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) UpdatePackage(ctx context.Context, packageID string, req *request.UpdatePackageRequest) (*response.PackageResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update package validation failed", zap.Error(err))
		return nil, err
	}

	if req.Name == nil && req.Description == nil && req.Price == nil && req.Duration == nil &&
		req.MaxGuests == nil && req.ImageURL == nil && req.Includes == nil && req.Active == nil {
		return nil, invalid("no fields to update")
	}

	pkg, err := s.find(ctx, packageID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = req.Description
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Duration != nil {
		pkg.Duration = *req.Duration
	}
	if req.MaxGuests != nil {
		pkg.MaxGuests = *req.MaxGuests
	}
	if req.ImageURL != nil {
		pkg.ImageURL = req.ImageURL
	}
	if req.Includes != nil {
		pkg.Includes = req.Includes
	}
	if req.Active != nil {
		pkg.Active = *req.Active
	}
	pkg.UpdatedAt = s.now()

	if err := s.repo.Package.Update(ctx, pkg); err != nil {
		return nil, fmt.Errorf("update package: %w", err)
	}

	s.log.Info("Package updated", zap.String("package_id", pkg.ID.String()))

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) TogglePackage(ctx context.Context, packageID string) (*response.ToggleResponse, error) {
	id, err := parseID(packageID, "package")
	if err != nil {
		return nil, err
	}

	active, err := s.repo.Package.Toggle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle package: %w", err)
	}

	s.log.Info("Package toggled", zap.String("package_id", id.String()), zap.Bool("active", active))
	return &response.ToggleResponse{ID: id.String(), Active: active}, nil
}

func (s *packageService) DeletePackage(ctx context.Context, packageID string) error {
	id, err := parseID(packageID, "package")
	if err != nil {
		return err
	}

	if err := s.repo.Package.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete package: %w", err)
	}

	s.log.Info("Package deleted", zap.String("package_id", id.String()))
	return nil
}
