package wire

import (
	"resort-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth mounts the session routes that need an authenticated admin.
// Login is public and mounted in setupRouter.
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/auth/logout", authHandler.Logout)
	r.Get("/auth/me", authHandler.Me)
}
