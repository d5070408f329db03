// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage backend identifiers accepted by STORAGE_BACKEND / -storage.
const (
	StorageBackendSQLite = "sqlite"
	StorageBackendFile   = "file"
)

// StructuredConfig is the top-level configuration container for the
// go-lingo client. It aggregates all sub-configurations and is populated by
// merging built-in defaults, an optional JSON file, an optional .env file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, default language and
	// the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend API location and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local key-value persistence
	// backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file. When empty, ".env"
	// in the working directory is tried and silently skipped if absent.
	// Populated via the ENV_FILE environment variable or the -env-file flag.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DefaultLanguage is the native language used until the user picks one.
	// Env: APP_DEFAULT_LANGUAGE
	DefaultLanguage string `env:"DEFAULT_LANGUAGE"`

	// LogFile is where the client writes its structured log. Relative paths
	// are resolved next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the settings of the outbound HTTP client.
type Adapter struct {
	// APIURL is the backend base URL (e.g. "https://api.example.com").
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// APIVersion is the version path segment placed after "/api/".
	// Env: ADAPTER_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// RequestTimeout bounds a single outbound request. Zero means no limit.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the local persistence backends.
type Storage struct {
	// Backend selects the key-value implementation: "sqlite" or "file".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// File holds the JSON file store settings.
	File File `envPrefix:"FILE_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// File holds settings for the JSON file backend.
type File struct {
	// Path is the location of the JSON document holding all keys.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// StatusPollInterval is how often the subscription status is refreshed
	// while a user is logged in.
	// Env: WORKERS_STATUS_POLL_INTERVAL
	StatusPollInterval time.Duration `env:"STATUS_POLL_INTERVAL"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultLanguage: "English",
			LogFile:         "go-lingo.log",
		},
		Adapter: Adapter{
			APIVersion: "v1",
		},
		Storage: Storage{
			Backend: StorageBackendSQLite,
			DB:      DB{DSN: "go-lingo.db"},
			File:    File{Path: "go-lingo.json"},
		},
		Workers: Workers{
			StatusPollInterval: time.Hour,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override non-zero
// fields of earlier ones):
//  1. Built-in defaults
//  2. JSON file (path resolved from the environment and flags)
//  3. .env file
//  4. Environment variables
//  5. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withFlags(args).
		withEnv().
		withDotEnv().
		withJSON().
		build()
}
