// internal/app/features/faculty/routes.go
package faculty

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the faculty listing.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleList)
	return r
}
