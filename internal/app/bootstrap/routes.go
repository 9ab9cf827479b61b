// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"
	"time"

	errorsfeature "github.com/dalemusser/wastematch/internal/app/features/errors"
	healthfeature "github.com/dalemusser/wastematch/internal/app/features/health"
	matchfeature "github.com/dalemusser/wastematch/internal/app/features/match"
	organizationsfeature "github.com/dalemusser/wastematch/internal/app/features/organizations"
	reportsfeature "github.com/dalemusser/wastematch/internal/app/features/reports"
	organizationstore "github.com/dalemusser/wastematch/internal/app/store/organizations"
	"github.com/dalemusser/wastematch/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/logging"
	"github.com/dalemusser/waffle/pantry/requestid"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. Every API route lives under /api; /health
// sits outside it for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	return newRouter(appCfg, deps, logger), nil
}

func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(requestid.Middleware(requestid.Config{
		Header:            requestid.DefaultHeader,
		Generator:         requestid.GenerateUUID,
		TrustProxy:        true,
		Validator:         requestid.ValidateUUID,
		SetResponseHeader: true,
	}))
	r.Use(shareRequestID)
	r.Use(logging.Recoverer(logger))
	r.Use(logging.RequestLogger(logger))
	if appCfg.SentryDSN != "" {
		// Repanic hands the panic on to logging.Recoverer after capture.
		r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestid.DefaultHeader},
		ExposedHeaders: []string{requestid.DefaultHeader},
		MaxAge:         300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	reportsHandler := reportsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	orgHandler := organizationsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	matchHandler := matchfeature.NewHandler(
		organizationstore.New(deps.MongoDatabase), appCfg.MatchRadiusM, errLog, logger)

	var limiter *ratelimit.Limiter
	if appCfg.RateLimitPerMin > 0 {
		limiter = ratelimit.New(appCfg.RateLimitPerMin, time.Minute)
		limiter.TrustProxy = appCfg.TrustProxy
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(ratelimit.Middleware(limiter, logger))
		api.Group(reportsfeature.Routes(reportsHandler))
		api.Group(organizationsfeature.Routes(orgHandler))
		api.Group(matchfeature.Routes(matchHandler))
	})

	return r
}

// shareRequestID exposes the requestid value under chi's key, which is where
// logging.RequestLogger reads it.
func shareRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, requestid.FromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
