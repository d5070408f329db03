// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the
// structured config.
type ClientApp struct {
	// Version is the client version reported in logs.
	Version string
	// DefaultLanguage is used until a language preference is stored.
	DefaultLanguage string
	// LogFile is the structured log destination.
	LogFile string
}

// ClientAdapter holds settings used by the client transport layer.
type ClientAdapter struct {
	// APIURL is the backend base URL.
	APIURL string
	// APIVersion is the version path segment placed after "/api/".
	APIVersion string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Backend is either [StorageBackendSQLite] or [StorageBackendFile].
	Backend string
	// DSN is the SQLite connection string.
	DSN string
	// FilePath is the JSON file store location.
	FilePath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// StatusPollInterval defines how often the subscription status is refreshed.
	StatusPollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:         cfg.App.Version,
			DefaultLanguage: cfg.App.DefaultLanguage,
			LogFile:         cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			APIURL:         cfg.Adapter.APIURL,
			APIVersion:     cfg.Adapter.APIVersion,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Backend:  cfg.Storage.Backend,
			DSN:      cfg.Storage.DB.DSN,
			FilePath: cfg.Storage.File.Path,
		},
		Workers: ClientWorkers{
			StatusPollInterval: cfg.Workers.StatusPollInterval,
		},
	}
}
