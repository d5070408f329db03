// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-lingo/internal/config"
	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/store"
	"github.com/MKhiriev/go-lingo/internal/utils"
)

// RequestIDHeader carries a per-request identifier for backend log correlation.
const RequestIDHeader = "X-Request-ID"

// TokenSource yields the bearer token for authenticated requests.
// [store.CredentialStore] satisfies it.
type TokenSource interface {
	LoadToken(ctx context.Context) (string, error)
}

// Request describes one backend call. Body, when non-nil, is sent as JSON.
type Request struct {
	Endpoint     string
	Method       string
	Body         any
	RequiresAuth bool
}

// Response is a successful (2xx) backend reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

type httpRequester struct {
	client *utils.HTTPClient
	tokens TokenSource
	ids    *utils.RequestIDGenerator
	logger *logger.Logger
}

// NewRequester returns a [Requester] that sends JSON over resty and attaches
// the token from tokens to requests that need it.
func NewRequester(cfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) Requester {
	return &httpRequester{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		tokens: tokens,
		ids:    utils.NewRequestIDGenerator(),
		logger: log,
	}
}

func (h *httpRequester) Do(ctx context.Context, r Request) (*Response, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)

	if r.Body != nil {
		req.SetBody(r.Body)
	}

	if r.RequiresAuth {
		if token := h.loadToken(ctx); token != "" {
			req.SetAuthToken(token)
		}
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	resp, err := req.Execute(method, r.Endpoint)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpRequester.Do").
			Str("request_id", requestID).
			Str("method", method).
			Str("endpoint", r.Endpoint).
			Msg("request failed")
		return nil, fmt.Errorf("%s %s request: %w", method, r.Endpoint, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpRequester.Do").
			Str("request_id", requestID).
			Int("status", resp.StatusCode()).
			Str("endpoint", r.Endpoint).
			Msg("backend returned an error")
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// loadToken returns "" when there is no stored session; the request then
// goes out without credentials and the backend decides.
func (h *httpRequester) loadToken(ctx context.Context) string {
	if h.tokens == nil {
		return ""
	}

	token, err := h.tokens.LoadToken(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			h.logger.Warn().Err(err).
				Str("func", "httpRequester.loadToken").
				Msg("could not read token, sending request without credentials")
		}
		return ""
	}

	return token
}
