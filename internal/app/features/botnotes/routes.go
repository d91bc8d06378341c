// internal/app/features/botnotes/routes.go
package botnotes

import "github.com/go-chi/chi/v5"

// Routes returns the bot subrouter.
//
// chi allows only one wildcard name per path position, so the same "{id}"
// placeholder serves as a Discord user id on the GET routes and as a note
// id on DELETE.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.ServeUserNotes)
	r.Get("/{id}/search", h.ServeSearch)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
