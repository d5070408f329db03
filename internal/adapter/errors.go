// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Status sentinels matched by [*APIError] through [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrMalformedAuthResponse is returned when a register or login response
	// lacks the token or the user profile.
	ErrMalformedAuthResponse = errors.New("malformed auth response: token or user missing")

	// ErrUnexpectedResponse is returned when a 2xx body cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response body")
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// APIError is a non-2xx backend response. Its message is the response body
// exactly as the backend sent it, so it can be shown to the user as is.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return "http " + strconv.Itoa(e.StatusCode)
}

// Is lets callers match on the status family, e.g. errors.Is(err, ErrConflict).
func (e *APIError) Is(target error) bool {
	sentinel, ok := statusSentinels[e.StatusCode]
	return ok && sentinel == target
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	return &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
}
