package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lingo/internal/config"
	"github.com/MKhiriev/go-lingo/models"
)

func TestNewAppInfoService(t *testing.T) {
	build := models.NewAppBuildInfo("1.4.0", "2026-10-19", "abc123")

	t.Run("config version wins", func(t *testing.T) {
		svc, err := NewAppInfoService(config.ClientApp{Version: "1.5.0-dev"}, build)
		require.NoError(t, err)
		assert.Equal(t, "1.5.0-dev", svc.GetAppVersion(context.Background()))
		assert.Equal(t, "abc123", svc.BuildInfo().BuildCommit())
	})

	t.Run("build version fallback", func(t *testing.T) {
		svc, err := NewAppInfoService(config.ClientApp{}, build)
		require.NoError(t, err)
		assert.Equal(t, "1.4.0", svc.GetAppVersion(context.Background()))
	})

	t.Run("no version", func(t *testing.T) {
		_, err := NewAppInfoService(config.ClientApp{}, models.AppBuildInfo{})
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})
}
