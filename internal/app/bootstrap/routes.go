// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	authapifeature "github.com/notekeep/notekeep/internal/app/features/authapi"
	botnotesfeature "github.com/notekeep/notekeep/internal/app/features/botnotes"
	healthfeature "github.com/notekeep/notekeep/internal/app/features/health"
	notesfeature "github.com/notekeep/notekeep/internal/app/features/notes"
	userstore "github.com/notekeep/notekeep/internal/app/store/users"
	"github.com/notekeep/notekeep/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for notekeep.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The client-facing API lives under the
// /api prefix; /health is the deep check for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens := auth.NewTokenService(appCfg.AuthSecret)
	authn := auth.NewAuthenticator(tokens, userstore.New(deps.MongoDatabase), logger)

	r := chi.NewRouter()

	// The web client runs on a different origin than the API.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(appCfg.CORSOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Deep health check for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	authHandler := authapifeature.NewHandler(deps.MongoDatabase, tokens, logger)
	notesHandler := notesfeature.NewHandler(deps.MongoDatabase, logger)

	r.Route("/api", func(api chi.Router) {
		// Liveness probe; the bot checks this message on startup.
		api.Get("/", healthHandler.ServeRoot)

		api.Mount("/auth", authapifeature.Routes(authHandler, authn))
		api.Mount("/notes", notesfeature.Routes(notesHandler, authn))

		if appCfg.BotAPIEnabled {
			botHandler := botnotesfeature.NewHandler(deps.MongoDatabase, logger)
			api.Mount("/bot/notes", botnotesfeature.Routes(botHandler))
		} else {
			logger.Info("bot API disabled; /api/bot/notes not mounted")
		}
	})

	return r, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
