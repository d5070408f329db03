// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the stored session, runs the terminal UI flows and releases the
// session and its background status polling on exit.
package client
