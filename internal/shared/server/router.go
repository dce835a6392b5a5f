package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/enhance"
	"resume-editor/internal/extract"
	"resume-editor/internal/resumes"
	"resume-editor/internal/services/health"
	"resume-editor/internal/shared/config"
	"resume-editor/internal/shared/metrics"
	"resume-editor/internal/shared/server/middleware"
	"resume-editor/internal/shared/server/respond"
)

const (
	rateLimitGroup      = "DEFAULT"
	parseRateLimitGroup = "PARSE"
)

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config         config.Config
	Health         *health.Service
	ResumeHandler  *resumes.Handler
	EnhanceHandler *enhance.Handler
	ExtractHandler *extract.Handler
	RateLimiter    *middleware.RateLimiter
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
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "Not Found")
	})

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{"message": "Resume Editor API is running!"})
	})
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	r.GET("/metrics", metrics.Handler())

	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(r)
	}

	limited := r.Group("/", middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: rateLimitGroup,
		GroupFor:     rateLimitGroupFor,
		Limiter:      deps.RateLimiter,
		Rules: map[string]middleware.RateLimitRule{
			rateLimitGroup:      {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			parseRateLimitGroup: {Rate: deps.Config.ParseRateLimitRPS, Burst: deps.Config.ParseRateLimitBurst},
		},
	}))
	if deps.EnhanceHandler != nil {
		deps.EnhanceHandler.RegisterRoutes(limited)
	}
	if deps.ExtractHandler != nil {
		deps.ExtractHandler.RegisterRoutes(limited)
	}

	return r
}

// rateLimitGroupFor gives PDF parsing its own, stricter bucket.
func rateLimitGroupFor(c *gin.Context) string {
	if c.FullPath() == "/parse-resume" {
		return parseRateLimitGroup
	}
	return rateLimitGroup
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
