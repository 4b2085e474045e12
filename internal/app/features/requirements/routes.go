// internal/app/features/requirements/routes.go
package requirements

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the requirements feature, mounted
// under /api/research.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// READS
	r.Post("/requirements/current", h.HandleCurrent)
	r.Post("/requirements/history", h.HandleHistory)

	// WRITES (drafts vs. final submissions)
	r.Post("/requirement/save", h.HandleSave)
	r.Post("/requirement/submit", h.HandleSubmit)

	return r
}
