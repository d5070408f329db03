package models

import (
	"encoding/json"
	"time"
)

// Known subscription states. The backend may report others.
const (
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
)

// StatusResponse is the payload of the subscription status endpoint.
type StatusResponse struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userID"`
	StripeSubscriptionID string    `json:"stripeSubscriptionID"`
	Status               string    `json:"status"`
	TrialStart           time.Time `json:"trialStart,omitzero"`
	TrialEnd             time.Time `json:"trialEnd,omitzero"`
	StartedAt            time.Time `json:"startedAt,omitzero"`
	NextBillingDate      time.Time `json:"nextBillingDate,omitzero"`
	CreatedAt            time.Time `json:"createdAt,omitzero"`
	UpdatedAt            time.Time `json:"updatedAt,omitzero"`
}

func (s *StatusResponse) UnmarshalJSON(data []byte) error {
	type plain StatusResponse
	aux := struct {
		*plain
		TrialStart      Timestamp `json:"trialStart"`
		TrialEnd        Timestamp `json:"trialEnd"`
		StartedAt       Timestamp `json:"startedAt"`
		NextBillingDate Timestamp `json:"nextBillingDate"`
		CreatedAt       Timestamp `json:"createdAt"`
		UpdatedAt       Timestamp `json:"updatedAt"`
	}{plain: (*plain)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.TrialStart = aux.TrialStart.Time()
	s.TrialEnd = aux.TrialEnd.Time()
	s.StartedAt = aux.StartedAt.Time()
	s.NextBillingDate = aux.NextBillingDate.Time()
	s.CreatedAt = aux.CreatedAt.Time()
	s.UpdatedAt = aux.UpdatedAt.Time()
	return nil
}

// ProfilePatch projects the status payload onto the profile fields it
// overrides when merged into the current user.
func (s StatusResponse) ProfilePatch() UserProfile {
	return UserProfile{
		Status:          s.Status,
		TrialStart:      s.TrialStart,
		TrialEnd:        s.TrialEnd,
		SubscriptionID:  s.StripeSubscriptionID,
		StartedAt:       s.StartedAt,
		NextBillingDate: s.NextBillingDate,
	}
}

// SubscribeResponse is returned when a trial subscription is started.
type SubscribeResponse struct {
	Status         string    `json:"status"`
	SubscriptionID string    `json:"subscriptionID"`
	TrialStart     time.Time `json:"trialStart,omitzero"`
	TrialEnd       time.Time `json:"trialEnd,omitzero"`
}

func (s *SubscribeResponse) UnmarshalJSON(data []byte) error {
	type plain SubscribeResponse
	aux := struct {
		*plain
		TrialStart Timestamp `json:"trialStart"`
		TrialEnd   Timestamp `json:"trialEnd"`
	}{plain: (*plain)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.TrialStart = aux.TrialStart.Time()
	s.TrialEnd = aux.TrialEnd.Time()
	return nil
}

// ProfilePatch projects the subscribe payload onto profile fields.
func (s SubscribeResponse) ProfilePatch() UserProfile {
	return UserProfile{
		Status:         s.Status,
		SubscriptionID: s.SubscriptionID,
		TrialStart:     s.TrialStart,
		TrialEnd:       s.TrialEnd,
	}
}

// CheckoutSession holds the hosted payment page the user must open.
type CheckoutSession struct {
	URL string `json:"url"`
}
