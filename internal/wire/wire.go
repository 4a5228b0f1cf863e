package wire

import (
	"net/http"
	"strings"

	"resort-admin/internal/adaptor"
	"resort-admin/internal/data/repository"
	"resort-admin/internal/usecase"
	"resort-admin/pkg/database"
	"resort-admin/pkg/middleware"
	"resort-admin/pkg/storage"
	"resort-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds repositories, services and handlers on top of db and mounts
// every route.
func Wiring(db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	repo := repository.NewRepository(db, logger)
	files := storage.NewLocalStorage(
		config.Upload.Dir,
		config.Upload.PublicPrefix,
		config.Upload.MaxUploadBytes(),
		config.Upload.MaxImageWidth,
		logger,
	)

	service := usecase.NewService(repo, db, files, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, service, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(middleware.NoStore)

	r.Get("/health", handler.Health.Live)
	mountUploads(r, config.Upload)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/health", handler.Health.Check)
		r.Post("/auth/login", handler.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(service.Auth, config.Auth.Enabled, logger))

			wireAuth(r, handler.Auth)
			wireDashboard(r, handler.Dashboard, handler.Lookup)
			wireAccommodation(r, handler.Accommodation)
			wireCatalog(r, handler.Package, handler.Catalog)
			wireBooking(r, handler.Booking)
			wireCoupon(r, handler.Coupon)
			wireGallery(r, handler.Gallery, handler.BlockedDate)
		})
	})

	return r
}

// mountUploads serves stored files below the public prefix.
func mountUploads(r chi.Router, upload utils.UploadConfig) {
	prefix := "/" + strings.Trim(upload.PublicPrefix, "/")
	if prefix == "/" {
		prefix = "/uploads"
	}

	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(upload.Dir)))
	r.Handle(prefix+"/*", fs)
}
