package service

import (
	"github.com/MKhiriev/go-lingo/internal/adapter"
	"github.com/MKhiriev/go-lingo/internal/config"
	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/store"
	"github.com/MKhiriev/go-lingo/internal/validators"
	"github.com/MKhiriev/go-lingo/models"
)

type ClientServices struct {
	SessionService      ClientSessionService
	LanguageService     ClientLanguageService
	LearningService     ClientLearningService
	SubscriptionService ClientSubscriptionService
	AppInfoService      AppInfoService
}

func NewClientServices(
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	localStore *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	logger *logger.Logger,
) (*ClientServices, error) {
	validator := validators.NewInputValidator()

	appInfo, err := NewAppInfoService(cfg.App, buildInfo)
	if err != nil {
		return nil, err
	}

	sessionSvc := NewClientSessionService(localStore.Credentials, serverAdapter, validator, cfg.Workers.StatusPollInterval, logger)
	languageSvc := NewClientLanguageService(localStore.Preferences, cfg.App.DefaultLanguage, logger)

	return &ClientServices{
		SessionService:      sessionSvc,
		LanguageService:     languageSvc,
		LearningService:     NewClientLearningService(serverAdapter, validator, languageSvc, logger),
		SubscriptionService: NewClientSubscriptionService(serverAdapter, sessionSvc, logger),
		AppInfoService:      appInfo,
	}, nil
}
