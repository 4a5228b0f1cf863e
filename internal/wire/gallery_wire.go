package wire

import (
	"resort-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireGallery mounts the asset registry, the generic upload and blocked dates.
func wireGallery(r chi.Router, galleryHandler *adaptor.GalleryHandler, blockedDateHandler *adaptor.BlockedDateHandler) {
	r.Route("/gallery", func(r chi.Router) {
		r.Get("/", galleryHandler.GetImages)
		r.Post("/", galleryHandler.UploadImages)
		r.Get("/stats", galleryHandler.GetStats)

		r.Get("/{id}", galleryHandler.GetImageByID)
		r.Put("/{id}", galleryHandler.UpdateImage)
		r.Delete("/{id}", galleryHandler.DeleteImage)
	})

	r.Post("/upload", galleryHandler.UploadFile)

	r.Route("/blocked-dates", func(r chi.Router) {
		r.Get("/", blockedDateHandler.GetBlockedDates)
		r.Post("/", blockedDateHandler.BlockDates)
		r.Delete("/date/{date}", blockedDateHandler.UnblockDate)

		r.Put("/{id}", blockedDateHandler.UpdateReason)
		r.Delete("/{id}", blockedDateHandler.DeleteBlockedDate)
	})
}
