// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(0)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_JSONHeaders(t *testing.T) {
	client := NewHTTPClient(0)

	if got := client.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", got)
	}
	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected Accept application/json, got %q", got)
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(5 * time.Second)

	if got := client.GetClient().Timeout; got != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", got)
	}
}

func TestNewHTTPClient_ZeroTimeoutUnbounded(t *testing.T) {
	client := NewHTTPClient(0)

	if got := client.GetClient().Timeout; got != 0 {
		t.Errorf("expected no timeout, got %v", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(0)
	client2 := NewHTTPClient(0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}
