// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"sort"

	"dario.cat/mergo"
)

// Layer priorities, lowest first. Layers are collected in whatever order the
// builder needs to resolve file paths and merged in priority order.
const (
	priorityDefaults = iota
	priorityJSON
	priorityDotEnv
	priorityEnv
	priorityFlags
)

type configLayer struct {
	priority int
	cfg      *StructuredConfig
}

type configBuilder struct {
	configs []configLayer
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]configLayer, 0, 5),
	}
}

func (b *configBuilder) add(priority int, cfg *StructuredConfig) {
	b.configs = append(b.configs, configLayer{priority: priority, cfg: cfg})
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	layers := make([]configLayer, len(b.configs))
	copy(layers, b.configs)
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].priority < layers[j].priority
	})

	config := new(StructuredConfig)
	for _, layer := range layers {
		if err := mergo.Merge(config, layer.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.add(priorityDefaults, defaultConfig())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(priorityEnv, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(priorityFlags, flagsCfg)
	return b
}

// withDotEnv must run after withEnv and withFlags so that ENV_FILE / -env-file
// can point it at a non-default file.
func (b *configBuilder) withDotEnv() *configBuilder {
	path, explicit := b.lookup(func(cfg *StructuredConfig) string { return cfg.EnvFilePath })
	if !explicit {
		path = defaultEnvFile
	}

	dotEnvCfg, err := parseDotEnv(path, explicit)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if dotEnvCfg != nil {
		b.add(priorityDotEnv, dotEnvCfg)
	}

	return b
}

// withJSON must run after every layer that can carry the JSON file path.
func (b *configBuilder) withJSON() *configBuilder {
	jsonPath, isJSONSpecified := b.lookup(func(cfg *StructuredConfig) string { return cfg.JSONFilePath })
	if !isJSONSpecified {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(priorityJSON, jsonCfg)
	return b
}

// lookup returns the value picked by field from the highest-priority layer
// collected so far that has it set.
func (b *configBuilder) lookup(field func(cfg *StructuredConfig) string) (string, bool) {
	best := -1
	value := ""
	for _, layer := range b.configs {
		if v := field(layer.cfg); v != "" && layer.priority > best {
			best = layer.priority
			value = v
		}
	}

	return value, best >= 0
}
