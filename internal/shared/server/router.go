package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-booster/internal/health"
	"resume-booster/internal/identity"
	"resume-booster/internal/resumes"
	"resume-booster/internal/shared/config"
	"resume-booster/internal/shared/metrics"
	"resume-booster/internal/shared/server/middleware"
	"resume-booster/internal/shared/server/respond"
)

const uploadRateGroup = "upload"

// RouterDeps carries everything NewRouter needs; wiring happens in
// bootstrap.
type RouterDeps struct {
	Config        config.Config
	Verifier      identity.Verifier
	ResumeHandler *resumes.Handler
	AuthHandler   *identity.Handler
	GoogleAuth    *identity.GoogleService
	Health        *health.Service
	// LocalFilesDir, when set, is served under /files so local-store
	// public URLs resolve.
	LocalFilesDir string
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	cfg := deps.Config
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/healthcheck", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})
	r.GET("/metrics", metrics.Handler())

	if deps.LocalFilesDir != "" {
		r.Static("/files", deps.LocalFilesDir)
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.Auth(deps.Verifier, cfg.APIPrefix+"/auth/google/"))
	api.Use(middleware.RateLimit(uploadRateLimit(cfg)))

	deps.GoogleAuth.RegisterRoutes(api)
	deps.AuthHandler.RegisterRoutes(api)
	deps.ResumeHandler.RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "Not Found")
	})

	return r
}

// uploadRateLimit limits the upload path only; uploads fan out into storage
// writes and an inference call, so they get a budget the read paths don't
// need.
func uploadRateLimit(cfg config.Config) middleware.RateLimitConfig {
	rules := map[string]middleware.RateLimitRule{}
	if cfg.UploadRatePerMin > 0 && cfg.UploadRateBurst > 0 {
		rules[uploadRateGroup] = middleware.RateLimitRule{
			Rate:  float64(cfg.UploadRatePerMin) / 60.0,
			Burst: cfg.UploadRateBurst,
		}
	}
	return middleware.RateLimitConfig{
		Rules: rules,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/resumes/upload") {
				return uploadRateGroup
			}
			return ""
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
