package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/postplus/postplus_api/internal/app"
	"github.com/postplus/postplus_api/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "postplus",
		Usage:   "Art distribution API for companies",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	source := func(env, key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(
			cli.EnvVar(env),
			yaml.YAML(key, altsrc.NewStringPtrSourcer(&config)),
		)
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  source("DB_HOST", "postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  source("DB_PORT", "postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  source("DB_USER", "postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  source("DB_PASSWORD", "postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "postplus",
			Sources:  source("DB_NAME", "postgresql.dbname"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "Set custom S3 endpoint (LocalStack, MinIO)",
			Sources: source("AWS_ENDPOINT", "s3.endpoint"),
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Usage:   "Set S3 region",
			Value:   "us-east-1",
			Sources: source("AWS_REGION", "s3.region"),
		},
		&cli.StringFlag{
			Name:     "s3-bucket",
			Usage:    "Set S3 bucket for uploaded arts and logos",
			Sources:  source("AWS_S3_BUCKET", "s3.bucket"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "s3-access-key-id",
			Usage:   "Set S3 access key id",
			Sources: source("AWS_ACCESS_KEY_ID", "s3.access_key_id"),
		},
		&cli.StringFlag{
			Name:    "s3-secret-access-key",
			Usage:   "Set S3 secret access key",
			Sources: source("AWS_SECRET_ACCESS_KEY", "s3.secret_access_key"),
		},
		&cli.BoolFlag{
			Name:    "s3-use-path-style",
			Usage:   "Use path-style S3 addressing",
			Value:   true,
			Sources: source("AWS_S3_USE_PATH_STYLE", "s3.use_path_style"),
		},
		&cli.StringFlag{
			Name:    "s3-internal-host",
			Usage:   "Set storage host used inside the deployment network",
			Value:   "localstack:4566",
			Sources: source("AWS_S3_INTERNAL_HOST", "s3.internal_host"),
		},
		&cli.StringFlag{
			Name:    "s3-public-host",
			Usage:   "Set storage host reachable by clients",
			Value:   "localhost:4566",
			Sources: source("AWS_S3_PUBLIC_HOST", "s3.public_host"),
		},
		&cli.StringFlag{
			Name:     "jwt-secret",
			Usage:    "Set token signing secret",
			Sources:  source("JWT_SECRET", "jwt.secret"),
			Required: true,
		},
		&cli.DurationFlag{
			Name:    "jwt-expires-in",
			Usage:   "Set token lifetime",
			Value:   24 * time.Hour,
			Sources: source("JWT_EXPIRES_IN", "jwt.expires_in"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "0.0.0.0",
			Sources: source("HOST", "http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "3000",
			Sources: source("PORT", "http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("HTTP_IDLE_TIMEOUT", "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   30 * time.Second,
			Sources: source("HTTP_READ_TIMEOUT", "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   30 * time.Second,
			Sources: source("HTTP_WRITE_TIMEOUT", "http.write_timeout"),
		},
		&cli.Int64Flag{
			Name:    "http-max-upload-bytes",
			Usage:   "Set maximum size of a multipart upload request",
			Value:   20 << 20,
			Sources: source("HTTP_MAX_UPLOAD_BYTES", "http.max_upload_bytes"),
		},
		&cli.StringSliceFlag{
			Name:    "cors-allowed-origins",
			Usage:   "Set origins allowed to call the API",
			Value:   []string{"*"},
			Sources: source("CORS_ALLOWED_ORIGINS", "http.cors_allowed_origins"),
		},
	}
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
