// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/notekeep/notekeep/internal/app/system/indexes"
	"go.uber.org/zap"
)

// EnsureSchema sets up the secondary indexes the note queries depend on.
// It runs once at startup, after the connection is established and before
// the HTTP handler is built.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase)
}
