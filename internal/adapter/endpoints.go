// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoints maps each backend operation to its fully-qualified URL under
// <API_URL>/api/<version>/.
type Endpoints struct {
	Register           string
	Login              string
	UpdateDetails      string
	DeleteUser         string
	Subscribe          string
	CancelSubscription string
	SubscriptionStatus string
	Checkout           string

	SentenceExplanation string
	SentenceCorrection  string
	WordDefinition      string
	WordSynonyms        string
	WordHistory         string
}

// NewEndpoints builds the endpoint table for apiURL and version (e.g. "v1").
func NewEndpoints(apiURL, version string) (Endpoints, error) {
	base, err := normalizeBaseURL(apiURL)
	if err != nil {
		return Endpoints{}, fmt.Errorf("invalid api url: %w", err)
	}

	version = strings.Trim(strings.TrimSpace(version), "/")
	if version == "" {
		return Endpoints{}, fmt.Errorf("empty api version")
	}

	prefix := base + "/api/" + version + "/"
	at := func(path string) string { return prefix + path }

	return Endpoints{
		Register:           at("auth/register"),
		Login:              at("auth/login"),
		UpdateDetails:      at("user/update-details"),
		DeleteUser:         at("user"),
		Subscribe:          at("subscription/subscribe"),
		CancelSubscription: at("subscription/cancel"),
		SubscriptionStatus: at("subscription/status"),
		Checkout:           at("subscription/checkout"),

		SentenceExplanation: at("sentence/explanation"),
		SentenceCorrection:  at("sentence/correction"),
		WordDefinition:      at("word/definition"),
		WordSynonyms:        at("word/synonyms"),
		WordHistory:         at("word/history"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
