// internal/app/features/botnotes/handler.go
//
// The bot surface trusts its caller: no token, no ownership checks. It is
// meant for the Discord bot process on an internal network, and the whole
// router can be left unmounted via the bot_api_enabled config key.
package botnotes

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	notestore "github.com/notekeep/notekeep/internal/app/store/notes"
	"github.com/notekeep/notekeep/internal/app/system/apierr"
	"github.com/notekeep/notekeep/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Result caps when the bot does not ask for a limit. Reads default to a
// screenful; searches to a handful, since the bot renders them inline in
// chat.
const (
	DefaultReadLimit   = 10
	DefaultSearchLimit = 5
)

type Handler struct {
	Notes *notestore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Notes: notestore.New(db),
		Log:   logger,
	}
}

func limitParam(r *http.Request, def int64) (int64, *apierr.FieldError) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed < 0 {
		return 0, &apierr.FieldError{Field: "limit", Message: "limit must be a non-negative integer"}
	}
	return parsed, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /bot/notes/{discord_user_id}?limit=                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeUserNotes(w http.ResponseWriter, r *http.Request) {
	discordUserID := chi.URLParam(r, "id")

	limit, ferr := limitParam(r, DefaultReadLimit)
	if ferr != nil {
		apierr.Validation(w, []apierr.FieldError{*ferr})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Notes.List(ctx, discordUserID, notestore.ListOptions{Limit: limit})
	if err != nil {
		h.Log.Error("bot: note list failed",
			zap.String("discord_user_id", discordUserID),
			zap.Error(err))
		apierr.Internal(w)
		return
	}

	apierr.JSON(w, http.StatusOK, list)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /bot/notes/{discord_user_id}/search?q=&limit=                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	discordUserID := chi.URLParam(r, "id")

	q := r.URL.Query().Get("q")
	if q == "" {
		apierr.Validation(w, []apierr.FieldError{{Field: "q", Message: "q is required"}})
		return
	}
	limit, ferr := limitParam(r, DefaultSearchLimit)
	if ferr != nil {
		apierr.Validation(w, []apierr.FieldError{*ferr})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Notes.List(ctx, discordUserID, notestore.ListOptions{Search: q, Limit: limit})
	if err != nil {
		h.Log.Error("bot: note search failed",
			zap.String("discord_user_id", discordUserID),
			zap.Error(err))
		apierr.Internal(w)
		return
	}

	apierr.JSON(w, http.StatusOK, list)
}

/*─────────────────────────────────────────────────────────────────────────────*
| DELETE /bot/notes/{id}                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleDelete deletes by note id alone. Any caller who knows an id can
// delete the note; there is deliberately no Discord-id scoping here.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Notes.Delete(ctx, id)
	if err != nil {
		h.Log.Error("bot: note delete failed", zap.String("note_id", id), zap.Error(err))
		apierr.Internal(w)
		return
	}
	if deleted == 0 {
		apierr.NotFound(w, "Note not found")
		return
	}

	apierr.JSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}
