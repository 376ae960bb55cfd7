package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers the router wires up. Nil entries are
// skipped, which keeps partial wiring usable in tests.
type RouterDeps struct {
	Config      config.Config
	Resumes     RouteRegistrar
	CoverLetter RouteRegistrar
	Profiles    RouteRegistrar
	JobSearches RouteRegistrar
	Account     RouteRegistrar
	Extract     RouteRegistrar
	GoogleAuth  *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(generationRateLimits()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	registerMeRoutes(api)

	for _, registrar := range []RouteRegistrar{
		deps.Resumes,
		deps.CoverLetter,
		deps.Profiles,
		deps.JobSearches,
		deps.Account,
		deps.Extract,
	} {
		if registrar != nil {
			registrar.RegisterRoutes(api)
		}
	}

	return r
}

// generationRateLimits throttles the generation endpoints; everything else
// passes through.
func generationRateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			switch c.FullPath() {
			case "/api/v1/resumes/generate", "/api/v1/resumes/:id/cover-letter/generate":
				return "GENERATE"
			default:
				return "DEFAULT"
			}
		},
		Rules: map[string]middleware.RateLimitRule{
			// Roughly one generation every 6 seconds with a small burst.
			"GENERATE": {Rate: 1.0 / 6.0, Burst: 3},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
