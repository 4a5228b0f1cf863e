package repository

import (
	"resort-admin/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Accommodation   AccommodationRepository
	Package         PackageRepository
	Service         ServiceRepository
	Lookup          LookupRepository
	Booking         BookingRepository
	BookingRoom     BookingRoomRepository
	BookingActivity BookingActivityRepository
	Payment         PaymentRepository
	Coupon          CouponRepository
	Gallery         GalleryRepository
	BlockedDate     BlockedDateRepository
	Dashboard       DashboardRepository
	Admin           AdminRepository
	Session         SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Accommodation:   NewAccommodationRepository(db, log),
		Package:         NewPackageRepository(db, log),
		Service:         NewServiceRepository(db, log),
		Lookup:          NewLookupRepository(db, log),
		Booking:         NewBookingRepository(db, log),
		BookingRoom:     NewBookingRoomRepository(db, log),
		BookingActivity: NewBookingActivityRepository(db, log),
		Payment:         NewPaymentRepository(db, log),
		Coupon:          NewCouponRepository(db, log),
		Gallery:         NewGalleryRepository(db, log),
		BlockedDate:     NewBlockedDateRepository(db, log),
		Dashboard:       NewDashboardRepository(db, log),
		Admin:           NewAdminRepository(db, log),
		Session:         NewSessionRepository(db, log),
	}
}
