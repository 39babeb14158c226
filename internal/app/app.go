package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/postplus/postplus_api/internal/auth"
	"github.com/postplus/postplus_api/internal/config"
	v1 "github.com/postplus/postplus_api/internal/controller/http/v1"
	"github.com/postplus/postplus_api/internal/infrastructure/metrics"
	"github.com/postplus/postplus_api/internal/infrastructure/report_generator"
	"github.com/postplus/postplus_api/internal/infrastructure/s3storage"
	"github.com/postplus/postplus_api/internal/repository/postgresql"
	"github.com/postplus/postplus_api/internal/service"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("s3_endpoint", a.cfg.S3.Endpoint),
		slog.String("s3_bucket", a.cfg.S3.Bucket),
		slog.Duration("jwt_expires_in", a.cfg.JWT.ExpiresIn),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	storage, err := s3storage.New(ctx, a.log, a.cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to create object storage: %w", err)
	}

	companiesRepository := postgresql.NewCompaniesRepository(pool)
	artsRepository := postgresql.NewArtsRepository(pool)
	downloadsRepository := postgresql.NewDownloadsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	hasher := auth.NewBcryptHasher(auth.DefaultCost)
	issuer := auth.NewJWTIssuer(a.cfg.JWT.Secret, a.cfg.JWT.ExpiresIn)
	collectors := metrics.New()

	authService := service.NewAuthService(a.log, companiesRepository, txManager, hasher, issuer, collectors)
	companiesService := service.NewCompaniesService(
		a.log,
		companiesRepository,
		downloadsRepository,
		txManager,
		hasher,
		storage,
		collectors,
		a.cfg.S3,
	)
	downloadsService := service.NewDownloadsService(
		a.log,
		downloadsRepository,
		artsRepository,
		companiesRepository,
		txManager,
		report_generator.New(),
		collectors,
	)
	artsService := service.NewArtsService(a.log, artsRepository, storage, downloadsService, collectors)

	server := v1.NewServer(a.log, a.cfg.HTTP, v1.Dependencies{
		Auth:      authService,
		Verifier:  authService,
		Companies: companiesService,
		Arts:      artsService,
		Downloads: downloadsService,
		Health:    postgresql.NewHealthChecker(pool),
		Metrics:   collectors,
	})

	return a.serve(ctx, server)
}

func (a *App) serve(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "server stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "server stopped gracefully")

	return nil
}
