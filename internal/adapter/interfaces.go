// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the go-lingo
// backend.
//
// [Requester] is the generic JSON-over-HTTP client: it attaches the bearer
// token to requests that need it and turns every non-2xx reply into an
// [*APIError] whose message is the backend's own text. [ServerAdapter] is the
// typed surface the service layer uses, one method per backend operation,
// built on a Requester and an [Endpoints] table.
//
// [*APIError] matches the status sentinels in errors.go via [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-lingo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// Requester sends a single request and returns the raw successful response.
type Requester interface {
	// Do performs r. Transport failures are returned wrapped; non-2xx replies
	// are returned as [*APIError].
	Do(ctx context.Context, r Request) (*Response, error)
}

// ServerAdapter defines the typed operations of the backend API.
// Implementations are responsible for serialisation and for attaching the
// stored token to authenticated calls.
type ServerAdapter interface {
	// Register creates an account. The response is returned as decoded; the
	// caller checks that both token and profile are present.
	Register(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Login authenticates an existing account.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// UpdateDetails changes the account email and returns the updated
	// profile as the backend reports it.
	UpdateDetails(ctx context.Context, update models.EmailUpdate) (models.UserProfile, error)

	// DeleteUser permanently removes the authenticated account.
	DeleteUser(ctx context.Context) error

	// Subscribe starts a trial subscription.
	Subscribe(ctx context.Context) (models.SubscribeResponse, error)

	// CancelSubscription cancels the current subscription.
	CancelSubscription(ctx context.Context) error

	// SubscriptionStatus returns the current subscription record.
	SubscriptionStatus(ctx context.Context) (models.StatusResponse, error)

	// CreateCheckoutSession returns the hosted payment page for a paid plan.
	CreateCheckoutSession(ctx context.Context) (models.CheckoutSession, error)

	// ExplainSentence returns the raw explanation text.
	ExplainSentence(ctx context.Context, req models.SentenceRequest) (string, error)

	// CorrectSentence returns the raw correction text.
	CorrectSentence(ctx context.Context, req models.SentenceRequest) (string, error)

	// DefineWord, WordSynonyms and WordHistory return the raw text of the
	// matching word endpoint. They do not require authentication.
	DefineWord(ctx context.Context, req models.WordRequest) (string, error)
	WordSynonyms(ctx context.Context, req models.WordRequest) (string, error)
	WordHistory(ctx context.Context, req models.WordRequest) (string, error)
}
