// Package config provides configuration loading, merging, and validation
// facilities for the go-lingo client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. .env file
//  4. Environment variables
//  5. Command-line flags
//
// The main entry point is [GetClientConfig]; [GetStructuredConfig] exposes
// the raw merged view.
package config
