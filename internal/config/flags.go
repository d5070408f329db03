// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args (typically os.Args[1:]).
// Unset flags leave the corresponding fields zero so that lower-priority
// sources still apply.
//
// Flags:
//
//	-api-url backend base URL
//	-api-version API version path segment (e.g. "v1")
//	-request-timeout outbound request timeout (e.g. "30s")
//	-storage storage backend: sqlite or file
//	-d SQLite DSN
//	-f JSON file store path
//	-poll-interval subscription status poll interval (e.g. "1h")
//	-language default native language
//	-log-file log file path
//	-c/-config json file path with configs
//	-env-file dotenv file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiURL         string
		apiVersion     string
		requestTimeout time.Duration
		backend        string
		databaseDSN    string
		filePath       string
		pollInterval   time.Duration
		language       string
		logFile        string
		jsonConfigPath string
		envFilePath    string
	)

	fs := flag.NewFlagSet("go-lingo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiURL, "api-url", "", "Backend base URL")
	fs.StringVar(&apiVersion, "api-version", "", "API version path segment")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&backend, "storage", "", "Storage backend: sqlite or file")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&filePath, "f", "", "File storage path")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Subscription status poll interval (e.g., 1h)")
	fs.StringVar(&language, "language", "", "Default native language")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", "Dotenv file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DefaultLanguage: language,
			LogFile:         logFile,
		},
		Adapter: Adapter{
			APIURL:         apiURL,
			APIVersion:     apiVersion,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Backend: backend,
			DB:      DB{DSN: databaseDSN},
			File:    File{Path: filePath},
		},
		Workers: Workers{
			StatusPollInterval: pollInterval,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, nil
}
