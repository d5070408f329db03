package models

import (
	"encoding/json"
	"time"
)

// UserProfile is the account record returned by the backend and mirrored in
// the local credential store. It is only meaningful together with a token:
// both are written and cleared as a pair.
//
// Time fields use the zero value for "absent".
type UserProfile struct {
	// Email is the login identity of the account.
	Email string `json:"email"`

	// Status is the subscription state reported by the backend
	// (e.g. "trialing", "active"). The set is open-ended.
	Status string `json:"status,omitempty"`

	// TrialStart and TrialEnd bound the free trial period, if any.
	TrialStart time.Time `json:"trialStart,omitzero"`
	TrialEnd   time.Time `json:"trialEnd,omitzero"`

	// SubscriptionID is the payment provider subscription identifier.
	SubscriptionID string `json:"stripeSubscriptionID,omitempty"`

	// StartedAt is when the paid subscription started.
	StartedAt time.Time `json:"startedAt,omitzero"`

	// NextBillingDate is the next scheduled charge.
	NextBillingDate time.Time `json:"nextBillingDate,omitzero"`
}

func (u *UserProfile) UnmarshalJSON(data []byte) error {
	type plain UserProfile
	aux := struct {
		*plain
		TrialStart      Timestamp `json:"trialStart"`
		TrialEnd        Timestamp `json:"trialEnd"`
		StartedAt       Timestamp `json:"startedAt"`
		NextBillingDate Timestamp `json:"nextBillingDate"`
	}{plain: (*plain)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	u.TrialStart = aux.TrialStart.Time()
	u.TrialEnd = aux.TrialEnd.Time()
	u.StartedAt = aux.StartedAt.Time()
	u.NextBillingDate = aux.NextBillingDate.Time()
	return nil
}

// HasActiveSubscription reports whether the profile already grants access,
// either through a paid subscription or a running trial.
func (u UserProfile) HasActiveSubscription() bool {
	return u.Status == SubscriptionStatusActive || u.Status == SubscriptionStatusTrialing
}
