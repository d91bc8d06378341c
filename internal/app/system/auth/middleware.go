package auth

import (
	"context"
	"net/http"
	"strings"

	userstore "github.com/notekeep/notekeep/internal/app/store/users"
	"github.com/notekeep/notekeep/internal/app/system/apierr"
	"github.com/notekeep/notekeep/internal/app/system/timeouts"
	"github.com/notekeep/notekeep/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated user injected by RequireUser.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(currentUserKey).(*models.User)
	return u, ok
}

// WithTestUser injects a user into the request context, bypassing token
// verification. For handler tests only.
func WithTestUser(r *http.Request, u *models.User) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// Authenticator resolves bearer tokens to user records.
type Authenticator struct {
	Tokens *TokenService
	Users  *userstore.Store
	Log    *zap.Logger
}

// NewAuthenticator constructs an Authenticator.
func NewAuthenticator(tokens *TokenService, users *userstore.Store, logger *zap.Logger) *Authenticator {
	return &Authenticator{Tokens: tokens, Users: users, Log: logger}
}

// RequireUser is the bearer-auth middleware for the authenticated surface.
//
// It fails closed:
//   - missing/malformed Authorization header, or any token verification
//     failure → 401
//   - token valid but no matching user record (e.g., deleted after the
//     token was issued) → 404
//
// On success the resolved user is placed in the request context; this is
// the only way a request gets attributed to a user.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			apierr.Unauthorized(w, "Invalid authentication credentials")
			return
		}

		discordUserID, err := a.Tokens.Verify(token)
		if err != nil {
			apierr.Unauthorized(w, "Invalid authentication credentials")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		user, err := a.Users.GetByDiscordID(ctx, discordUserID)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				apierr.NotFound(w, "User not found")
				return
			}
			a.Log.Error("auth: user lookup failed",
				zap.String("discord_user_id", discordUserID),
				zap.Error(err))
			apierr.Internal(w)
			return
		}

		next.ServeHTTP(w, withUser(r, user))
	})
}
