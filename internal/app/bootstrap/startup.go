// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	organizationstore "github.com/dalemusser/wastematch/internal/app/store/organizations"
	"github.com/dalemusser/wastematch/internal/app/system/respond"
	"github.com/dalemusser/wastematch/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	respond.SetLogger(logger)

	if appCfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              appCfg.SentryDSN,
			Environment:      coreCfg.Env,
			AttachStacktrace: true,
		}); err != nil {
			// Error reporting is optional; keep serving without it.
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			logger.Info("sentry enabled", zap.String("environment", coreCfg.Env))
		}
	}

	if appCfg.SeedOnStart {
		if err := seedIfEmpty(ctx, deps, logger); err != nil {
			return err
		}
	}
	return nil
}

// seedIfEmpty inserts the demo organizations only into an empty collection,
// so restarts do not pile up duplicates.
func seedIfEmpty(ctx context.Context, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	n, err := deps.MongoDatabase.Collection("organizations").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("seed skipped; organizations exist", zap.Int64("count", n))
		return nil
	}
	orgs, err := organizationstore.New(deps.MongoDatabase).CreateMany(ctx, organizationstore.SeedOrganizations())
	if err != nil {
		return err
	}
	logger.Info("seeded demo organizations", zap.Int("count", len(orgs)))
	return nil
}
