package records

import (
	"github.com/go-chi/chi/v5"
)

// Routes wires all four verbs onto a single path, mirroring the legacy
// one-endpoint script surface.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/", h.Update)
	r.Delete("/", h.Delete)
	return r
}
