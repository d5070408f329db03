// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front-end driven by [App].
type UI interface {
	// AuthFlow blocks until the user has logged in or signed up. notice is
	// shown to the user when not empty.
	AuthFlow(ctx context.Context, notice string) error

	// MainLoop blocks until the user quits or the session ends. logout is
	// true when the session ended and the auth flow should run again.
	MainLoop(ctx context.Context) (logout bool, err error)
}
