package service

import "errors"

var (
	ErrNoActiveSession   = errors.New("no active session")
	ErrAlreadySubscribed = errors.New("you already have an active subscription")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrUnsupportedLanguage   = errors.New("unsupported language")
)

// Fallback messages stored in the session state when an error has no text.
const (
	msgRegistrationFailed  = "Registration failed"
	msgLoginFailed         = "Login failed"
	msgUpdateEmailFailed   = "Failed to update email"
	msgDeleteAccountFailed = "Failed to delete account"
)

// errorMessage returns the text a failed action reports to the UI.
func errorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
