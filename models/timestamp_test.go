package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusResponse_UnmarshalJSON_LenientDates(t *testing.T) {
	payload := `{
		"status": "trialing",
		"stripeSubscriptionID": "sub_1",
		"trialStart": "2026-10-19T08:30:00Z",
		"trialEnd": "2026-10-26",
		"startedAt": "",
		"nextBillingDate": null,
		"createdAt": "yesterday",
		"updatedAt": "2026-10-19 08:30:00"
	}`

	var got StatusResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &got))

	assert.Equal(t, "trialing", got.Status)
	assert.Equal(t, "sub_1", got.StripeSubscriptionID)
	assert.True(t, got.TrialStart.Equal(time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)))
	assert.True(t, got.TrialEnd.Equal(time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)))
	assert.True(t, got.StartedAt.IsZero())
	assert.True(t, got.NextBillingDate.IsZero())
	assert.True(t, got.CreatedAt.IsZero())
	assert.True(t, got.UpdatedAt.Equal(time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)))
}

func TestSubscribeResponse_UnmarshalJSON_EmptyDates(t *testing.T) {
	var got SubscribeResponse
	require.NoError(t, json.Unmarshal([]byte(`{"status":"trialing","subscriptionID":"sub_2","trialStart":"","trialEnd":null}`), &got))

	assert.Equal(t, SubscribeResponse{Status: "trialing", SubscriptionID: "sub_2"}, got)
}

func TestUserProfile_JSONRoundTrip(t *testing.T) {
	want := UserProfile{
		Email:           "a@b.co",
		Status:          SubscriptionStatusActive,
		SubscriptionID:  "sub_1",
		StartedAt:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		NextBillingDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got UserProfile
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}

func TestTimestamp_UnmarshalJSON_RejectsNonString(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}
