package usecase

import (
	"resort-admin/internal/data/repository"
	"resort-admin/pkg/database"
	"resort-admin/pkg/storage"
	"resort-admin/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth          AuthService
	Accommodation AccommodationService
	Package       PackageService
	Catalog       ServiceCatalog
	Booking       BookingService
	Coupon        CouponService
	Gallery       GalleryService
	BlockedDate   BlockedDateService
	Dashboard     DashboardService
	Lookup        LookupService
	Health        HealthService
}

func NewService(repo *repository.Repository, db database.PgxIface, files storage.FileStore, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:          NewAuthService(repo, config, log),
		Accommodation: NewAccommodationService(repo, db, files, log),
		Package:       NewPackageService(repo, log),
		Catalog:       NewServiceCatalog(repo, log),
		Booking:       NewBookingService(repo, db, log),
		Coupon:        NewCouponService(repo, log),
		Gallery:       NewGalleryService(repo, files, log),
		BlockedDate:   NewBlockedDateService(repo, db, log),
		Dashboard:     NewDashboardService(repo, log),
		Lookup:        NewLookupService(repo.Lookup, log),
		Health:        NewHealthService(db, config.App.Name, log),
	}
}
