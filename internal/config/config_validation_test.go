// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	cfg := defaultConfig()
	cfg.Adapter.APIURL = "https://api.example.com"
	return newClientConfig(cfg)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid defaults", mutate: func(*ClientConfig) {}},
		{
			name:    "missing api url",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.APIURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "relative api url",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.APIURL = "api.example.com" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unsupported scheme",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.APIURL = "ftp://api.example.com" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty api version",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.APIVersion = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = -time.Second },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.Backend = "redis" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "sqlite without dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "file without path",
			mutate: func(cfg *ClientConfig) {
				cfg.Storage.Backend = StorageBackendFile
				cfg.Storage.FilePath = ""
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "file backend ignores dsn",
			mutate: func(cfg *ClientConfig) {
				cfg.Storage.Backend = StorageBackendFile
				cfg.Storage.DSN = ""
			},
		},
		{
			name:    "zero poll interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.StatusPollInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "empty default language",
			mutate:  func(cfg *ClientConfig) { cfg.App.DefaultLanguage = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsAllFields(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{Version: "1.0.0", DefaultLanguage: "Thai", LogFile: "a.log"},
		Adapter: Adapter{APIURL: "http://x", APIVersion: "v1", RequestTimeout: time.Second},
		Storage: Storage{Backend: "file", DB: DB{DSN: "a.db"}, File: File{Path: "a.json"}},
		Workers: Workers{StatusPollInterval: time.Minute},
	}

	got := newClientConfig(cfg)

	assert.Equal(t, ClientApp{Version: "1.0.0", DefaultLanguage: "Thai", LogFile: "a.log"}, got.App)
	assert.Equal(t, ClientAdapter{APIURL: "http://x", APIVersion: "v1", RequestTimeout: time.Second}, got.Adapter)
	assert.Equal(t, ClientStorage{Backend: "file", DSN: "a.db", FilePath: "a.json"}, got.Storage)
	assert.Equal(t, ClientWorkers{StatusPollInterval: time.Minute}, got.Workers)
}
