package app

import (
	"fmt"
	"log"

	"regulens/internal/gateway/config"
	"regulens/internal/gateway/repository/archive"
	"regulens/internal/gateway/repository/record"
)

// gatewayStores holds the optional persistence backends. A nil store
// means the matching endpoints answer 503.
type gatewayStores struct {
	record  *record.Store
	archive *archive.Store
}

func initStores(cfg *config.Config) (*gatewayStores, error) {
	stores := &gatewayStores{}

	if cfg.Record.Enabled {
		rs, err := record.NewPostgres(cfg.Record.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize record store: %w", err)
		}
		stores.record = rs
		log.Printf("record store: postgres")
	} else {
		log.Printf("record store: disabled (DATABASE_URL not set)")
	}

	if cfg.Archive.Enabled && cfg.Archive.Endpoint != "" && cfg.Archive.AccessKey != "" && cfg.Archive.SecretKey != "" {
		as, err := archive.NewStore(archive.S3Config{
			Endpoint:  cfg.Archive.Endpoint,
			Region:    cfg.Archive.Region,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			Bucket:    cfg.Archive.Bucket,
			UseSSL:    cfg.Archive.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize archive store: %w", err)
		}
		stores.archive = as
		log.Printf("archive store: s3 bucket=%s endpoint=%s", cfg.Archive.Bucket, cfg.Archive.Endpoint)
	} else {
		log.Printf("archive store: disabled (s3 config incomplete)")
	}

	return stores, nil
}

func (s *gatewayStores) close() {
	if s == nil {
		return
	}
	if s.record != nil {
		_ = s.record.Close()
	}
}
