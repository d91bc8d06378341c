// internal/app/features/notes/handler.go
package notes

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	notestore "github.com/notekeep/notekeep/internal/app/store/notes"
	userstore "github.com/notekeep/notekeep/internal/app/store/users"
	"github.com/notekeep/notekeep/internal/app/system/apierr"
	"github.com/notekeep/notekeep/internal/app/system/auth"
	"github.com/notekeep/notekeep/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultListLimit caps GET /notes results when no limit is supplied.
const DefaultListLimit = 100

type Handler struct {
	Users *userstore.Store
	Notes *notestore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users: userstore.New(db),
		Notes: notestore.New(db),
		Log:   logger,
	}
}

type createNoteRequest struct {
	DiscordUserID string  `json:"discord_user_id"`
	Content       string  `json:"content"`
	ServerID      *string `json:"server_id"`
	ServerName    *string `json:"server_name"`
	ChannelID     *string `json:"channel_id"`
	ChannelName   *string `json:"channel_name"`
}

type updateNoteRequest struct {
	Content string `json:"content"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /notes  (no token; the bot creates notes on behalf of Discord users)   |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleCreate persists a note for the given Discord id, auto-provisioning
// a placeholder user on first contact. The note's discord_user_id is the
// denormalized copy of the owner's; both are written once here and never
// updated independently.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, []apierr.FieldError{{Field: "body", Message: "Invalid JSON body"}})
		return
	}

	var errs []apierr.FieldError
	if req.DiscordUserID == "" {
		errs = append(errs, apierr.FieldError{Field: "discord_user_id", Message: "discord_user_id is required"})
	}
	if req.Content == "" {
		errs = append(errs, apierr.FieldError{Field: "content", Message: "content is required"})
	}
	if len(errs) > 0 {
		apierr.Validation(w, errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.EnsureForDiscordID(ctx, req.DiscordUserID)
	if err != nil {
		h.Log.Error("note create: ensure user failed",
			zap.String("discord_user_id", req.DiscordUserID),
			zap.Error(err))
		apierr.Internal(w)
		return
	}

	note, err := h.Notes.Create(ctx, notestore.NewNote{
		UserID:        user.ID,
		DiscordUserID: user.DiscordUserID,
		Content:       req.Content,
		ServerID:      req.ServerID,
		ServerName:    req.ServerName,
		ChannelID:     req.ChannelID,
		ChannelName:   req.ChannelName,
	})
	if err != nil {
		h.Log.Error("note create failed",
			zap.String("discord_user_id", req.DiscordUserID),
			zap.Error(err))
		apierr.Internal(w)
		return
	}

	apierr.JSON(w, http.StatusOK, note)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /notes?search=&server_id=&limit=                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeList returns the caller's own notes, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		apierr.Unauthorized(w, "Invalid authentication credentials")
		return
	}

	limit := int64(DefaultListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			apierr.Validation(w, []apierr.FieldError{{Field: "limit", Message: "limit must be a non-negative integer"}})
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Notes.List(ctx, user.DiscordUserID, notestore.ListOptions{
		Search:   r.URL.Query().Get("search"),
		ServerID: r.URL.Query().Get("server_id"),
		Limit:    limit,
	})
	if err != nil {
		h.Log.Error("note list failed",
			zap.String("discord_user_id", user.DiscordUserID),
			zap.Error(err))
		apierr.Internal(w)
		return
	}

	apierr.JSON(w, http.StatusOK, list)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /notes/{id}                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeNote(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		apierr.Unauthorized(w, "Invalid authentication credentials")
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	note, err := h.Notes.GetOwned(ctx, id, user.DiscordUserID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			apierr.NotFound(w, "Note not found")
			return
		}
		h.Log.Error("note get failed", zap.String("note_id", id), zap.Error(err))
		apierr.Internal(w)
		return
	}

	apierr.JSON(w, http.StatusOK, note)
}

/*─────────────────────────────────────────────────────────────────────────────*
| PUT /notes/{id}                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		apierr.Unauthorized(w, "Invalid authentication credentials")
		return
	}
	id := chi.URLParam(r, "id")

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, []apierr.FieldError{{Field: "body", Message: "Invalid JSON body"}})
		return
	}
	if req.Content == "" {
		apierr.Validation(w, []apierr.FieldError{{Field: "content", Message: "content is required"}})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	note, err := h.Notes.UpdateContent(ctx, id, user.DiscordUserID, req.Content)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			apierr.NotFound(w, "Note not found")
			return
		}
		h.Log.Error("note update failed", zap.String("note_id", id), zap.Error(err))
		apierr.Internal(w)
		return
	}

	apierr.JSON(w, http.StatusOK, note)
}

/*─────────────────────────────────────────────────────────────────────────────*
| DELETE /notes/{id}                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		apierr.Unauthorized(w, "Invalid authentication credentials")
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Notes.DeleteOwned(ctx, id, user.DiscordUserID)
	if err != nil {
		h.Log.Error("note delete failed", zap.String("note_id", id), zap.Error(err))
		apierr.Internal(w)
		return
	}
	if deleted == 0 {
		apierr.NotFound(w, "Note not found")
		return
	}

	apierr.JSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}
