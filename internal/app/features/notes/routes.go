// internal/app/features/notes/routes.go
package notes

import (
	"github.com/go-chi/chi/v5"
	"github.com/notekeep/notekeep/internal/app/system/auth"
)

func Routes(h *Handler, authn *auth.Authenticator) chi.Router {
	r := chi.NewRouter()

	// CREATE is open: the bot posts notes for users who may not have
	// registered yet.
	r.Post("/", h.HandleCreate)

	// Everything else is scoped to the authenticated caller.
	r.Group(func(pr chi.Router) {
		pr.Use(authn.RequireUser)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeNote)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
