package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lingo/internal/adapter"
	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/mock"
	"github.com/MKhiriev/go-lingo/models"
)

func newTestSubscriptionSvc(t *testing.T, ctrl *gomock.Controller) (ClientSubscriptionService, *clientSessionService, *mock.MockServerAdapter, *mock.MockCredentialStore) {
	t.Helper()
	session, mockAdapter, mockCreds, _ := newTestSessionSvc(t, ctrl)
	return NewClientSubscriptionService(mockAdapter, session, logger.Nop()), session, mockAdapter, mockCreds
}

func TestSubscriptionService_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, mockAdapter, _ := newTestSubscriptionSvc(t, ctrl)
	session.setUser(&models.UserProfile{Email: "a@b.co", Status: models.SubscriptionStatusCanceled})

	mockAdapter.EXPECT().CreateCheckoutSession(gomock.Any()).
		Return(models.CheckoutSession{URL: "https://pay.example.com/s/1"}, nil)

	url, err := svc.Checkout(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/s/1", url)
}

func TestSubscriptionService_Checkout_AlreadySubscribed(t *testing.T) {
	for _, status := range []string{models.SubscriptionStatusActive, models.SubscriptionStatusTrialing} {
		t.Run(status, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, session, _, _ := newTestSubscriptionSvc(t, ctrl)
			session.setUser(&models.UserProfile{Email: "a@b.co", Status: status})

			_, err := svc.Checkout(context.Background())
			assert.ErrorIs(t, err, ErrAlreadySubscribed)
		})
	}
}

func TestSubscriptionService_LoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestSubscriptionSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Checkout(ctx)
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.ErrorIs(t, svc.StartTrial(ctx), ErrNoActiveSession)
	assert.ErrorIs(t, svc.Cancel(ctx), ErrNoActiveSession)
}

func TestSubscriptionService_StartTrial_MergesIntoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, mockAdapter, mockCreds := newTestSubscriptionSvc(t, ctrl)
	session.setUser(&models.UserProfile{Email: "a@b.co"})

	trialStart := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	trialEnd := trialStart.AddDate(0, 0, 7)
	want := models.UserProfile{
		Email:          "a@b.co",
		Status:         models.SubscriptionStatusTrialing,
		SubscriptionID: "sub_9",
		TrialStart:     trialStart,
		TrialEnd:       trialEnd,
	}

	gomock.InOrder(
		mockAdapter.EXPECT().Subscribe(gomock.Any()).Return(models.SubscribeResponse{
			Status:         models.SubscriptionStatusTrialing,
			SubscriptionID: "sub_9",
			TrialStart:     trialStart,
			TrialEnd:       trialEnd,
		}, nil),
		mockCreds.EXPECT().UpdateUser(gomock.Any(), want).Return(nil),
	)

	require.NoError(t, svc.StartTrial(context.Background()))

	user, _ := session.User()
	assert.Equal(t, want, user)
}

func TestSubscriptionService_Cancel_RefreshesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, mockAdapter, mockCreds := newTestSubscriptionSvc(t, ctrl)
	session.setUser(&models.UserProfile{Email: "a@b.co", Status: models.SubscriptionStatusActive})

	gomock.InOrder(
		mockAdapter.EXPECT().CancelSubscription(gomock.Any()).Return(nil),
		mockAdapter.EXPECT().SubscriptionStatus(gomock.Any()).Return(models.StatusResponse{Status: models.SubscriptionStatusCanceled}, nil),
		mockCreds.EXPECT().UpdateUser(gomock.Any(), models.UserProfile{Email: "a@b.co", Status: models.SubscriptionStatusCanceled}).Return(nil),
	)

	require.NoError(t, svc.Cancel(context.Background()))

	user, _ := session.User()
	assert.Equal(t, models.SubscriptionStatusCanceled, user.Status)
}

func TestSubscriptionService_Cancel_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, session, mockAdapter, _ := newTestSubscriptionSvc(t, ctrl)
	session.setUser(&models.UserProfile{Email: "a@b.co", Status: models.SubscriptionStatusActive})

	mockAdapter.EXPECT().CancelSubscription(gomock.Any()).
		Return(&adapter.APIError{StatusCode: http.StatusNotFound, Body: "No active subscription"})

	err := svc.Cancel(context.Background())

	assert.EqualError(t, err, "No active subscription")
	user, _ := session.User()
	assert.Equal(t, models.SubscriptionStatusActive, user.Status)
}
