// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"github.com/dalemusser/wastematch/internal/app/system/geo"
	"github.com/dalemusser/wastematch/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

const (
	envPrefix = "WASTEMATCH"

	// Legacy variable names from earlier deployments.
	legacyMongoURIEnv = "MONGODB_URI"
	legacyPortEnv     = "PORT"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultHTTPPort   = "3001"

	// WAFFLE reads core keys under the app prefix as well.
	httpPortEnv = envPrefix + "_HTTP_PORT"
)

// appConfigKeys defines the configuration keys for wastematch.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, match_radius_m, etc.
//   - Environment variables: WASTEMATCH_MONGO_URI, WASTEMATCH_MATCH_RADIUS_M, etc.
//   - Command-line flags: --mongo_uri, --match_radius_m, etc.
func appConfigKeys() []config.AppKey {
	mongoURI := os.Getenv(legacyMongoURIEnv)
	if mongoURI == "" {
		mongoURI = defaultMongoURI
	}
	return []config.AppKey{
		{Name: "mongo_uri", Default: mongoURI, Desc: "MongoDB connection URI (defaults to $MONGODB_URI)"},
		{Name: "mongo_database", Default: "agriwaste", Desc: "MongoDB database name"},
		{Name: "match_radius_m", Default: geo.DefaultRadiusM, Desc: "Nearest-match search radius in meters"},
		{Name: "cors_origins", Default: "*", Desc: "Comma-separated allowed CORS origins"},
		{Name: "rate_limit_per_min", Default: 120, Desc: "Per-client /api requests per minute (0 disables)"},
		{Name: "trust_proxy", Default: false, Desc: "Identify clients by X-Forwarded-For/X-Real-IP (enable only behind a proxy)"},
		{Name: "seed_on_start", Default: false, Desc: "Insert demo organizations at startup if none exist"},
		{Name: "sentry_dsn", Default: "", Desc: "Sentry DSN (blank disables error reporting)"},
	}
}

// applyLegacyPort maps $PORT onto WASTEMATCH_HTTP_PORT when the latter is
// unset, defaulting to 3001. A --http_port flag still wins over both.
func applyLegacyPort() {
	if os.Getenv(httpPortEnv) != "" {
		return
	}
	p := os.Getenv(legacyPortEnv)
	if p == "" {
		p = defaultHTTPPort
	}
	_ = os.Setenv(httpPortEnv, p)
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WASTEMATCH_* for both core and app keys)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	applyLegacyPort()

	// Timeouts are needed before ConnectDB and EnsureSchema run.
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeouts overridden from environment",
			zap.Duration("ping", cur.Ping),
			zap.Duration("short", cur.Short),
			zap.Duration("medium", cur.Medium),
			zap.Duration("long", cur.Long))
	}

	coreCfg, appValues, err := config.LoadWithAppConfig(logger, envPrefix, appConfigKeys())
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:        appValues.String("mongo_uri"),
		MongoDatabase:   appValues.String("mongo_database"),
		MatchRadiusM:    float64(appValues.Int("match_radius_m")),
		CORSOrigins:     splitOrigins(appValues.String("cors_origins")),
		RateLimitPerMin: appValues.Int("rate_limit_per_min"),
		TrustProxy:      appValues.Bool("trust_proxy"),
		SeedOnStart:     appValues.Bool("seed_on_start"),
		SentryDSN:       appValues.String("sentry_dsn"),
	}

	logger.Info("app config loaded",
		zap.Int("http_port", coreCfg.HTTP.HTTPPort),
		zap.String("mongo_database", appCfg.MongoDatabase),
		zap.Float64("match_radius_m", appCfg.MatchRadiusM),
		zap.Strings("cors_origins", appCfg.CORSOrigins),
		zap.Int("rate_limit_per_min", appCfg.RateLimitPerMin),
		zap.Bool("trust_proxy", appCfg.TrustProxy),
		zap.Bool("seed_on_start", appCfg.SeedOnStart),
		zap.Bool("sentry", appCfg.SentryDSN != ""))

	return coreCfg, appCfg, nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format is checked here to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.RateLimitPerMin < 0 {
		return fmt.Errorf("rate_limit_per_min must not be negative, got %d", appCfg.RateLimitPerMin)
	}
	if appCfg.MatchRadiusM <= 0 {
		return fmt.Errorf("match_radius_m must be positive, got %v", appCfg.MatchRadiusM)
	}
	return nil
}
