// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-lingo/internal/config"
	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/models"
)

type httpServerAdapter struct {
	requester Requester
	endpoints Endpoints

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the endpoint table from cfg and returns a
// [ServerAdapter] that reads bearer tokens from tokens.
func NewHTTPServerAdapter(cfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	endpoints, err := NewEndpoints(cfg.APIURL, cfg.APIVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter configuration: %w", err)
	}

	return NewServerAdapter(NewRequester(cfg, tokens, logger), endpoints, logger), nil
}

// NewServerAdapter wires a [ServerAdapter] over an existing [Requester].
func NewServerAdapter(requester Requester, endpoints Endpoints, logger *logger.Logger) ServerAdapter {
	return &httpServerAdapter{requester: requester, endpoints: endpoints, logger: logger}
}

func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.doJSON(ctx, Request{
		Endpoint: h.endpoints.Register,
		Method:   http.MethodPost,
		Body:     creds,
	}, &out); err != nil {
		return models.AuthResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	if err := h.doJSON(ctx, Request{
		Endpoint: h.endpoints.Login,
		Method:   http.MethodPost,
		Body:     creds,
	}, &out); err != nil {
		return models.AuthResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) UpdateDetails(ctx context.Context, update models.EmailUpdate) (models.UserProfile, error) {
	var out models.UpdateDetailsResponse
	if err := h.doJSON(ctx, Request{
		Endpoint:     h.endpoints.UpdateDetails,
		Method:       http.MethodPost,
		Body:         update,
		RequiresAuth: true,
	}, &out); err != nil {
		return models.UserProfile{}, err
	}

	return out.UserDetails, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context) error {
	_, err := h.requester.Do(ctx, Request{
		Endpoint:     h.endpoints.DeleteUser,
		Method:       http.MethodDelete,
		RequiresAuth: true,
	})
	return err
}

func (h *httpServerAdapter) Subscribe(ctx context.Context) (models.SubscribeResponse, error) {
	var out models.SubscribeResponse
	if err := h.doJSON(ctx, Request{
		Endpoint:     h.endpoints.Subscribe,
		Method:       http.MethodPost,
		RequiresAuth: true,
	}, &out); err != nil {
		return models.SubscribeResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) CancelSubscription(ctx context.Context) error {
	_, err := h.requester.Do(ctx, Request{
		Endpoint:     h.endpoints.CancelSubscription,
		Method:       http.MethodPost,
		RequiresAuth: true,
	})
	return err
}

func (h *httpServerAdapter) SubscriptionStatus(ctx context.Context) (models.StatusResponse, error) {
	var out models.StatusResponse
	if err := h.doJSON(ctx, Request{
		Endpoint:     h.endpoints.SubscriptionStatus,
		Method:       http.MethodGet,
		RequiresAuth: true,
	}, &out); err != nil {
		return models.StatusResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) CreateCheckoutSession(ctx context.Context) (models.CheckoutSession, error) {
	var out models.CheckoutSession
	if err := h.doJSON(ctx, Request{
		Endpoint:     h.endpoints.Checkout,
		Method:       http.MethodPost,
		RequiresAuth: true,
	}, &out); err != nil {
		return models.CheckoutSession{}, err
	}
	if out.URL == "" {
		return models.CheckoutSession{}, fmt.Errorf("%w: checkout url missing", ErrUnexpectedResponse)
	}

	return out, nil
}

func (h *httpServerAdapter) ExplainSentence(ctx context.Context, req models.SentenceRequest) (string, error) {
	return h.doText(ctx, Request{
		Endpoint:     h.endpoints.SentenceExplanation,
		Method:       http.MethodPost,
		Body:         req,
		RequiresAuth: true,
	})
}

func (h *httpServerAdapter) CorrectSentence(ctx context.Context, req models.SentenceRequest) (string, error) {
	return h.doText(ctx, Request{
		Endpoint:     h.endpoints.SentenceCorrection,
		Method:       http.MethodPost,
		Body:         req,
		RequiresAuth: true,
	})
}

func (h *httpServerAdapter) DefineWord(ctx context.Context, req models.WordRequest) (string, error) {
	return h.doText(ctx, Request{
		Endpoint: h.endpoints.WordDefinition,
		Method:   http.MethodPost,
		Body:     req,
	})
}

func (h *httpServerAdapter) WordSynonyms(ctx context.Context, req models.WordRequest) (string, error) {
	return h.doText(ctx, Request{
		Endpoint: h.endpoints.WordSynonyms,
		Method:   http.MethodPost,
		Body:     req,
	})
}

func (h *httpServerAdapter) WordHistory(ctx context.Context, req models.WordRequest) (string, error) {
	return h.doText(ctx, Request{
		Endpoint: h.endpoints.WordHistory,
		Method:   http.MethodPost,
		Body:     req,
	})
}

func (h *httpServerAdapter) doJSON(ctx context.Context, r Request, out any) error {
	resp, err := h.requester.Do(ctx, r)
	if err != nil {
		return err
	}

	if err = resp.JSON(out); err != nil {
		h.logger.Err(err).
			Str("func", "httpServerAdapter.doJSON").
			Str("endpoint", r.Endpoint).
			Msg("could not decode response")
		return err
	}

	return nil
}

func (h *httpServerAdapter) doText(ctx context.Context, r Request) (string, error) {
	resp, err := h.requester.Do(ctx, r)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
