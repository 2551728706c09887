package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pratikupreti7/razorsnreviews-api/internal/auth"
	"github.com/pratikupreti7/razorsnreviews-api/internal/service"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/health"
	"github.com/pratikupreti7/razorsnreviews-api/pkg/middleware"
)

// RouterConfig carries the dependencies and settings the router needs.
type RouterConfig struct {
	Users      *service.UserService
	Salons     *service.SalonService
	Reviews    *service.ReviewService
	JWTManager *auth.JWTManager
	Health     *health.Handler
	Logger     *slog.Logger
	CORS       middleware.CORSConfig
	PprofCIDRs []string
}

// NewRouter creates a chi router with all API routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware. RequestLogger must come after RequestLogging and
	// Tracing so the request-scoped logger picks up their context values.
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Tracing("razorsnreviews-api"))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("razorsnreviews-api"))

	// Operational endpoints.
	r.Get("/healthz", cfg.Health.LivenessHandler())
	r.Get("/readyz", cfg.Health.ReadinessHandler())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	if len(cfg.PprofCIDRs) > 0 {
		middleware.RegisterPprof(r, cfg.PprofCIDRs, cfg.Logger)
	}

	// Token validator bridging the internal JWT manager to the auth middleware.
	tokenValidator := func(token string) (*middleware.Claims, error) {
		claims, err := cfg.JWTManager.ValidateAccessToken(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{UserID: claims.UserID, Email: claims.Email}, nil
	}

	authHandler := NewAuthHandler(cfg.Users, cfg.Logger)
	userHandler := NewUserHandler(cfg.Users, cfg.Salons, cfg.Reviews, cfg.Logger)
	salonHandler := NewSalonHandler(cfg.Salons, cfg.Logger)
	reviewHandler := NewReviewHandler(cfg.Reviews, cfg.Logger)

	// Auth endpoints (public).
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Profile endpoints (auth required).
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Use(middleware.Auth(tokenValidator))

		r.Get("/me", userHandler.GetProfile)
		r.Get("/me/salons", userHandler.ListMySalons)
		r.Get("/me/reviewed-salons", userHandler.ListReviewedSalons)
	})

	// Salon endpoints. Reads are public, mutations require auth.
	r.Route("/api/v1/salons", func(r chi.Router) {
		r.Get("/", salonHandler.List)
		r.Get("/{id}", salonHandler.Get)
		r.Get("/{id}/reviews", reviewHandler.ListBySalon)

		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Use(middleware.Auth(tokenValidator))

			r.Post("/", salonHandler.Create)
			r.Put("/{id}", salonHandler.Update)
			r.Delete("/{id}", salonHandler.Delete)
			r.Post("/{id}/images", salonHandler.AddImages)

			r.Post("/{id}/reviews", reviewHandler.Create)
			r.Put("/{id}/reviews", reviewHandler.Update)
			r.Get("/{id}/reviews/me", reviewHandler.GetMine)
		})
	})

	// Review endpoints. Reads are public, deletion requires the author.
	r.Route("/api/v1/reviews", func(r chi.Router) {
		r.Get("/{id}", reviewHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokenValidator))

			r.Delete("/{id}", reviewHandler.Delete)
		})
	})

	return r
}
