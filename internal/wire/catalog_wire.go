package wire

import (
	"resort-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCatalog mounts packages and services.
func wireCatalog(r chi.Router, packageHandler *adaptor.PackageHandler, serviceHandler *adaptor.ServiceHandler) {
	r.Route("/packages", func(r chi.Router) {
		r.Get("/", packageHandler.GetPackages)
		r.Post("/", packageHandler.CreatePackage)
		r.Get("/stats", packageHandler.GetStats)

		r.Get("/{id}", packageHandler.GetPackageByID)
		r.Put("/{id}", packageHandler.UpdatePackage)
		r.Patch("/{id}/toggle", packageHandler.TogglePackage)
		r.Delete("/{id}", packageHandler.DeletePackage)
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/", serviceHandler.GetServices)
		r.Post("/", serviceHandler.CreateService)

		r.Get("/{id}", serviceHandler.GetServiceByID)
		r.Put("/{id}", serviceHandler.UpdateService)
		r.Delete("/{id}", serviceHandler.DeleteService)
	})
}
