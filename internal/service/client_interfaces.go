package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-lingo/models"
)

// SessionState is a snapshot of the session manager's in-memory state.
type SessionState struct {
	// Loading is true until Init has finished restoring the stored session.
	Loading bool
	// Err is the message of the last failed user action, or "".
	Err string
	// User is the logged-in profile, nil when logged out.
	User *models.UserProfile
}

// LoggedIn reports whether the snapshot carries a user.
func (s SessionState) LoggedIn() bool {
	return s.User != nil
}

// ClientSessionService owns the session of this installation: the logged-in
// user, the loading flag and the last error. Every change of the user is
// written to the credential store before it becomes visible in memory.
//
// Mutating operations are serialised; State and User never block on I/O.
type ClientSessionService interface {
	// Init restores the stored session. Storage errors are logged, never
	// returned. Loading is false once Init returns. A restored session starts
	// the status poller.
	Init(ctx context.Context)

	// Dispose stops the status poller and releases the session lifetime.
	Dispose()

	// State returns a copy of the current state.
	State() SessionState

	// User returns the logged-in profile and whether there is one.
	User() (models.UserProfile, bool)

	// Register creates an account, persists the returned token and profile
	// and starts the status poller. On failure the error message is also
	// stored in State().Err.
	Register(ctx context.Context, email, password string) error

	// Login authenticates an existing account. Same contract as Register.
	Login(ctx context.Context, email, password string) error

	// Logout clears the stored and in-memory session and stops the poller
	// without contacting the backend. Memory is cleared even when the
	// store fails; the store error is returned.
	Logout(ctx context.Context) error

	// UpdateEmail changes the account email, keeping every other profile
	// field.
	UpdateEmail(ctx context.Context, newEmail string) error

	// DeleteAccount removes the account on the backend and then clears the
	// session as Logout does.
	DeleteAccount(ctx context.Context) error

	// CheckSubscriptionStatus fetches the subscription record and copies its
	// fields onto the user, clearing the ones the record leaves empty. Without a logged-in user it does nothing and returns a
	// zero response with a nil error.
	CheckSubscriptionStatus(ctx context.Context) (models.StatusResponse, error)

	// MergeUser overlays the non-zero fields of patch onto the user and
	// persists the result.
	MergeUser(ctx context.Context, patch models.UserProfile) error
}

// ClientStatusJob defines the contract for the background worker that
// periodically refreshes the subscription status of the logged-in user.
type ClientStatusJob interface {
	// Start launches the background goroutine. It checks every interval,
	// defaulting to one hour if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Running reports whether the goroutine is active.
	Running() bool
}

// StatusChecker is what the status job calls on every tick.
type StatusChecker interface {
	CheckSubscriptionStatus(ctx context.Context) (models.StatusResponse, error)
}

// ClientLanguageService holds the native language the learning calls are
// made in.
type ClientLanguageService interface {
	// Load reads the stored preference. Errors are logged and the default is
	// kept. Returns the current language.
	Load(ctx context.Context) string

	// Set persists lang and then makes it current. On failure the current
	// language is unchanged.
	Set(ctx context.Context, lang string) error

	// Current returns the language in use.
	Current() string

	// Languages returns every selectable language.
	Languages() []models.Language

	// Filter returns the languages whose label contains query, ignoring case.
	Filter(query string) []models.Language
}

// ClientLearningService runs the sentence and word operations in the current
// native language and returns text cleaned for display.
type ClientLearningService interface {
	ExplainSentence(ctx context.Context, sentence string) (string, error)
	CorrectSentence(ctx context.Context, sentence string) (string, error)

	// LookupWord fetches definition, synonyms and history concurrently. The
	// first failure cancels the others and is returned.
	LookupWord(ctx context.Context, word string) (models.WordLookup, error)
}

// ClientSubscriptionService drives the paid plan from the settings screen.
type ClientSubscriptionService interface {
	// Checkout returns the hosted payment URL, or [ErrAlreadySubscribed]
	// without a request when the user already has access.
	Checkout(ctx context.Context) (string, error)

	// StartTrial starts a trial and merges the result into the session user.
	StartTrial(ctx context.Context) error

	// Cancel cancels the subscription and refreshes the status.
	Cancel(ctx context.Context) error
}

// AppInfoService exposes build and version details to the UI.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
}
