// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.APIURL == "" {
		return fmt.Errorf("%w: API URL is required (ADAPTER_API_URL or -api-url)", ErrInvalidAdapterConfigs)
	}
	u, err := url.Parse(cfg.Adapter.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: API URL %q must be an absolute http(s) URL", ErrInvalidAdapterConfigs, cfg.Adapter.APIURL)
	}
	if cfg.Adapter.APIVersion == "" {
		return fmt.Errorf("%w: API version is empty", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	switch cfg.Storage.Backend {
	case StorageBackendSQLite:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: empty SQLite DSN", ErrInvalidStorageConfigs)
		}
	case StorageBackendFile:
		if cfg.Storage.FilePath == "" {
			return fmt.Errorf("%w: empty file store path", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Workers.StatusPollInterval <= 0 {
		return fmt.Errorf("%w: status poll interval must be positive", ErrInvalidWorkerConfigs)
	}

	if cfg.App.DefaultLanguage == "" {
		return fmt.Errorf("%w: default language is empty", ErrInvalidAppConfigs)
	}

	return nil
}
