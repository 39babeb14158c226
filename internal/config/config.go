package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	PostgreSQL
	S3
	JWT
	HTTP
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type S3 struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool

	// InternalHost is the storage host as seen from inside the deployment
	// network; it is rewritten to PublicHost in URLs returned to clients.
	InternalHost string
	PublicHost   string
}

type JWT struct {
	Secret    string
	ExpiresIn time.Duration
}

type HTTP struct {
	Host               string
	Port               string
	IdleTimeout        time.Duration
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	MaxUploadBytes     int64
	CORSAllowedOrigins []string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		S3: S3{
			Endpoint:        cmd.String("s3-endpoint"),
			Region:          cmd.String("s3-region"),
			Bucket:          cmd.String("s3-bucket"),
			AccessKeyID:     cmd.String("s3-access-key-id"),
			SecretAccessKey: cmd.String("s3-secret-access-key"),
			UsePathStyle:    cmd.Bool("s3-use-path-style"),
			InternalHost:    cmd.String("s3-internal-host"),
			PublicHost:      cmd.String("s3-public-host"),
		},
		JWT: JWT{
			Secret:    cmd.String("jwt-secret"),
			ExpiresIn: cmd.Duration("jwt-expires-in"),
		},
		HTTP: HTTP{
			Host:               cmd.String("http-host"),
			Port:               cmd.String("http-port"),
			IdleTimeout:        cmd.Duration("http-idle-timeout"),
			ReadTimeout:        cmd.Duration("http-read-timeout"),
			WriteTimeout:       cmd.Duration("http-write-timeout"),
			MaxUploadBytes:     cmd.Int64("http-max-upload-bytes"),
			CORSAllowedOrigins: cmd.StringSlice("cors-allowed-origins"),
		},
	}
}
