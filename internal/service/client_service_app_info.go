package service

import (
	"context"

	"github.com/MKhiriev/go-lingo/internal/config"
	"github.com/MKhiriev/go-lingo/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo
}

// NewAppInfoService reports cfg.Version, falling back to the build version.
func NewAppInfoService(cfg config.ClientApp, buildInfo models.AppBuildInfo) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{appVersion: version, buildInfo: buildInfo}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}
