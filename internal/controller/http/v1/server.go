package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/postplus/postplus_api/internal/config"
)

const healthCheckTimeout = 2 * time.Second

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Metrics interface {
	RequestObserver
	Handler() http.Handler
}

type Dependencies struct {
	Auth      AuthService
	Verifier  TokenVerifier
	Companies CompaniesService
	Arts      ArtsService
	Downloads DownloadsService
	Health    HealthChecker
	Metrics   Metrics
}

type Server struct {
	httpServer *http.Server
}

func NewServer(log *slog.Logger, cfg config.HTTP, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, cfg, deps),
		},
	}
}

func NewRouter(log *slog.Logger, cfg config.HTTP, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(Instrument(deps.Metrics))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	validator := NewValidator()

	authHandler := NewAuthHandler(log, validator, deps.Auth)
	companies := NewCompaniesHandler(log, validator, deps.Companies, cfg.MaxUploadBytes)
	arts := NewArtsHandler(log, validator, deps.Arts, cfg.MaxUploadBytes)
	downloads := NewDownloadsHandler(log, validator, deps.Downloads)

	r.Get("/healthz", healthz(log, deps.Health))
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	authenticate := Authenticate(log, deps.Verifier)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/companies", func(r chi.Router) {
		r.Post("/", companies.Create)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/", companies.List)
			r.Get("/{id}", companies.Get)
			r.Patch("/{id}", companies.Update)
			r.Delete("/{id}", companies.Delete)
			r.Post("/{id}/logo", companies.UploadLogo)
		})
	})

	r.Route("/arts", func(r chi.Router) {
		r.Post("/", arts.Create)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/", arts.List)
			r.Get("/{id}", arts.Get)
			r.Patch("/{id}", arts.Update)
			r.Delete("/{id}", arts.Delete)
			r.Post("/{id}/upload", arts.Upload)
			r.Post("/{id}/download", arts.Download)
		})
	})

	r.Route("/downloads", func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/", downloads.Create)
		r.Get("/", downloads.List)
		r.Get("/export", downloads.Export)
		r.Get("/stats/summary", downloads.Stats)
		r.Get("/stats/report", downloads.StatsReport)
		r.Get("/{id}", downloads.Get)
	})

	return r
}

func healthz(log *slog.Logger, health HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := health.Ping(ctx); err != nil {
			log.WarnContext(ctx, "health check failed", slog.String("err", err.Error()))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{"status": "unavailable"})
			return
		}

		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
