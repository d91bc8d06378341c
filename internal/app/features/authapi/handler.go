// internal/app/features/authapi/handler.go
package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	userstore "github.com/notekeep/notekeep/internal/app/store/users"
	"github.com/notekeep/notekeep/internal/app/system/apierr"
	"github.com/notekeep/notekeep/internal/app/system/auth"
	"github.com/notekeep/notekeep/internal/app/system/password"
	"github.com/notekeep/notekeep/internal/app/system/timeouts"
	"github.com/notekeep/notekeep/internal/app/system/validate"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users  *userstore.Store
	Tokens *auth.TokenService
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, tokens *auth.TokenService, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Tokens: tokens,
		Log:    logger,
	}
}

type registerRequest struct {
	DiscordUserID string `json:"discord_user_id"`
	Username      string `json:"username"`
	Password      string `json:"password"`
}

type loginRequest struct {
	DiscordUserID string `json:"discord_user_id"`
	Password      string `json:"password"`
}

// tokenResponse is the wire shape for issued credentials.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /auth/register                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, []apierr.FieldError{{Field: "body", Message: "Invalid JSON body"}})
		return
	}

	if errs := validate.Registration(req.DiscordUserID, req.Username, req.Password); len(errs) > 0 {
		apierr.Validation(w, errs)
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		h.Log.Error("register: password hash failed", zap.Error(err))
		apierr.Internal(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.Create(ctx, req.DiscordUserID, strings.TrimSpace(req.Username), hash)
	if err != nil {
		if err == userstore.ErrDuplicateDiscordID {
			apierr.BadRequest(w, "User already exists")
			return
		}
		h.Log.Error("register: user create failed",
			zap.String("discord_user_id", req.DiscordUserID),
			zap.Error(err))
		apierr.Internal(w)
		return
	}

	token, err := h.Tokens.Issue(user.DiscordUserID)
	if err != nil {
		h.Log.Error("register: token issue failed", zap.Error(err))
		apierr.Internal(w)
		return
	}

	apierr.JSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /auth/login                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, []apierr.FieldError{{Field: "body", Message: "Invalid JSON body"}})
		return
	}

	if errs := validate.Login(req.DiscordUserID); len(errs) > 0 {
		apierr.Validation(w, errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByDiscordID(ctx, req.DiscordUserID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			apierr.NotFound(w, "User not found")
			return
		}
		h.Log.Error("login: user lookup failed",
			zap.String("discord_user_id", req.DiscordUserID),
			zap.Error(err))
		apierr.Internal(w)
		return
	}

	// Auto-provisioned users have no hash; Verify treats that as a
	// mismatch, so they cannot log in here.
	if !password.Verify(req.Password, user.PasswordHash) {
		apierr.Unauthorized(w, "Invalid password")
		return
	}

	// Issuance is stateless: every login mints a fresh token and earlier
	// tokens stay valid.
	token, err := h.Tokens.Issue(user.DiscordUserID)
	if err != nil {
		h.Log.Error("login: token issue failed", zap.Error(err))
		apierr.Internal(w)
		return
	}

	apierr.JSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/me                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		apierr.Unauthorized(w, "Invalid authentication credentials")
		return
	}
	apierr.JSON(w, http.StatusOK, user.Response())
}
