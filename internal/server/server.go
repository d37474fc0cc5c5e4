// Package server wires the HTTP surface: routing, middleware and the
// JSON request/response schemas.
package server

import (
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/mmynk/tripcraft/internal/auth"
	"github.com/mmynk/tripcraft/internal/config"
	"github.com/mmynk/tripcraft/internal/middleware"
	"github.com/mmynk/tripcraft/internal/service"
	"github.com/mmynk/tripcraft/internal/translate"
)

// Server holds the handler dependencies and builds the HTTP handler tree.
type Server struct {
	auth       *service.AuthService
	plans      *service.PlanService
	world      *service.WorldService
	jwtManager *auth.JWTManager
	mapper     worldMapper
	limiter    *middleware.RateLimiter
	cfg        config.ServerConfig
	logger     *slog.Logger
}

// New creates a server over the given services.
func New(
	authSvc *service.AuthService,
	plans *service.PlanService,
	world *service.WorldService,
	jwtManager *auth.JWTManager,
	ts *translate.Service,
	cfg config.ServerConfig,
	rl config.RateLimitConfig,
	logger *slog.Logger,
) *Server {
	return &Server{
		auth:       authSvc,
		plans:      plans,
		world:      world,
		jwtManager: jwtManager,
		mapper:     worldMapper{translate: ts},
		limiter:    middleware.NewRateLimiter(rl.PerSecond, rl.Burst),
		cfg:        cfg,
		logger:     logger,
	}
}

// Handler returns the fully wired handler: routes inside, then metrics,
// request logging, security headers and CORS outside.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()

	router.GET("/health", s.handleHealth)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	router.POST("/auth/signup", s.limiter.Limit(s.handleSignup))
	router.POST("/auth/login", s.limiter.Limit(s.handleLogin))

	router.GET("/plan", s.requireAuth(s.handleListPlans))
	router.POST("/plan", s.requireAuth(s.handleCreatePlan))
	router.GET("/plan/:id", s.optionalAuth(s.handleGetPlan))
	router.PUT("/plan/:id", s.optionalAuth(s.handleUpdatePlan))
	router.DELETE("/plan/:id", s.requireAuth(s.handleDeletePlan))

	router.GET("/world/region", s.handleRegions)
	router.GET("/world/sub_region", s.handleSubRegions)
	router.GET("/world/country", s.handleCountries)
	router.GET("/world/state", s.handleStates)
	router.GET("/world/city", s.handleCities)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	var handler http.Handler = router
	handler = middleware.Metrics(handler)
	handler = middleware.Logging(handler)
	handler = securityHeaders(handler)
	return c.Handler(handler)
}

func (s *Server) requireAuth(next httprouter.Handle) httprouter.Handle {
	return middleware.RequireAuth(s.jwtManager, next)
}

func (s *Server) optionalAuth(next httprouter.Handle) httprouter.Handle {
	return middleware.OptionalAuth(s.jwtManager, next)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
