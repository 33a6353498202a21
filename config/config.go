// Package config loads process configuration from environment variables
// and constructs the configured blob store.
package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/mozgsvina/sis-app/blobstore"
	"github.com/mozgsvina/sis-app/blobstore/minio"
	"github.com/mozgsvina/sis-app/blobstore/s3"
)

// Config is the full process configuration of the dashboard.
type Config struct {
	Addr     string `env:"SIS_ADDR"      envDefault:":8080"`
	LogLevel string `env:"SIS_LOG_LEVEL" envDefault:"info"`

	// Store selects the corpus backend: "s3", "minio" or "local".
	Store string `env:"SIS_STORE" envDefault:"s3"`

	AnnotationsKey string `env:"SIS_ANNOTATIONS_KEY" envDefault:"tumanova.jsonl"`
	FrequenciesKey string `env:"SIS_FREQUENCIES_KEY" envDefault:"frequencies.xlsx"`

	S3Region string `env:"SIS_S3_REGION"`
	S3Bucket string `env:"SIS_S3_BUCKET" envDefault:"sis-annotation"`
	S3Prefix string `env:"SIS_S3_PREFIX"`

	MinioEndpoint  string `env:"SIS_MINIO_ENDPOINT"`
	MinioAccessKey string `env:"SIS_MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"SIS_MINIO_SECRET_KEY"`
	MinioBucket    string `env:"SIS_MINIO_BUCKET"`
	MinioPrefix    string `env:"SIS_MINIO_PREFIX"`
	MinioSecure    bool   `env:"SIS_MINIO_SECURE" envDefault:"true"`

	LocalDir string `env:"SIS_LOCAL_DIR" envDefault:"."`

	// WordCloudFont is the path to a TTF font covering the corpus
	// language; word-cloud rendering is disabled when empty.
	WordCloudFont string `env:"SIS_WORDCLOUD_FONT"`

	// ExportPerMinute rate-limits the export endpoint.
	ExportPerMinute float64 `env:"SIS_EXPORT_PER_MINUTE" envDefault:"6"`
	ExportBurst     int     `env:"SIS_EXPORT_BURST"      envDefault:"3"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// OpenStore constructs the configured blob store.
func (c Config) OpenStore(ctx context.Context) (blobstore.BlobStore, error) {
	switch c.Store {
	case "s3":
		return s3.NewStoreFromEnv(ctx, c.S3Region, c.S3Bucket, c.S3Prefix)
	case "minio":
		return minio.Connect(c.MinioEndpoint, c.MinioAccessKey, c.MinioSecretKey,
			c.MinioBucket, c.MinioPrefix, c.MinioSecure)
	case "local":
		return blobstore.NewLocalStore(c.LocalDir), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", c.Store)
	}
}
