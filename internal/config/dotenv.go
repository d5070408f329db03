// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseDotEnv reads a dotenv file and maps it onto a [StructuredConfig] with
// the same variable names the process environment uses. The process
// environment itself is left untouched.
//
// A missing file is an error only when the path was given explicitly;
// otherwise (nil, nil) is returned.
func parseDotEnv(path string, explicit bool) (*StructuredConfig, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading env file %q: %w", path, err)
	}

	cfg := &StructuredConfig{}
	if err := parseEnvMap(cfg, vars); err != nil {
		return nil, err
	}

	return cfg, nil
}
