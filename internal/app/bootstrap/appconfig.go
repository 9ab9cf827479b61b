// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (HTTP port, logging level, timeouts); AppConfig
// is everything specific to waste matching.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Matching
	MatchRadiusM float64 // Search radius for /api/match, in meters

	// HTTP
	CORSOrigins     []string // Allowed CORS origins; "*" allows any
	RateLimitPerMin int      // Per-client /api requests per minute; 0 disables
	TrustProxy      bool     // Key clients by X-Forwarded-For/X-Real-IP (only behind a proxy)

	// Seed the demo organizations at startup when the collection is empty.
	SeedOnStart bool

	// Error reporting (blank disables Sentry)
	SentryDSN string
}
