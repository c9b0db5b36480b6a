package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Env     string
	Regs    RegulationsConfig
	Model   ModelConfig
	Record  RecordConfig
	Archive ArchiveConfig
}

// RegulationsConfig holds the regulations.gov v4 API settings.
type RegulationsConfig struct {
	APIKey string
}

// ModelConfig selects the generation backend used by the bridge.
type ModelConfig struct {
	Provider string
	Host     string
	Port     string
	Model    string
}

// RecordConfig holds the Postgres connection settings for personas,
// documents and stored comments.
type RecordConfig struct {
	Enabled bool
	DSN     string
}

// ArchiveConfig holds the S3-compatible store settings for archived
// comment snapshots.
type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ConfigurationError names the setting that made startup impossible.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Setting, e.Reason)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8003", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	cfg := &Config{
		Port: *port,
		Env:  env,
		Regs: RegulationsConfig{
			APIKey: strings.TrimSpace(os.Getenv("REGULATIONS_API_KEY")),
		},
		Model:   loadModelConfig(),
		Record:  loadRecordConfig(),
		Archive: loadArchiveConfig(env),
	}

	if cfg.Regs.APIKey == "" {
		return nil, &ConfigurationError{Setting: "REGULATIONS_API_KEY", Reason: "not set"}
	}
	return cfg, nil
}

func loadModelConfig() ModelConfig {
	return ModelConfig{
		Provider: firstNonEmpty(strings.TrimSpace(os.Getenv("MODEL_PROVIDER")), "ollama"),
		Host:     firstNonEmpty(strings.TrimSpace(os.Getenv("GPT_HOST")), "10.0.4.52"),
		Port:     firstNonEmpty(strings.TrimSpace(os.Getenv("GPT_PORT")), "11434"),
		Model:    firstNonEmpty(strings.TrimSpace(os.Getenv("GPT_MODEL")), "gpt-oss:20b"),
	}
}

func loadRecordConfig() RecordConfig {
	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	return RecordConfig{Enabled: dsn != "", DSN: dsn}
}

func loadArchiveConfig(env string) ArchiveConfig {
	endpoint := resolveArchiveEndpoint(env)
	return ArchiveConfig{
		Enabled:   strings.EqualFold(strings.TrimSpace(env), "local") || endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_BUCKET")), "regulens-comments"),
		UseSSL:    resolveArchiveUseSSL(env),
	}
}

func resolveArchiveEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_MINIO_ENDPOINT")), "minio:9000")
	}
	return strings.TrimSpace(os.Getenv("ARCHIVE_S3_ENDPOINT"))
}

func resolveArchiveUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("ARCHIVE_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
