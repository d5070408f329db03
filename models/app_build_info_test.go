package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want string
	}{
		{"full", NewAppBuildInfo("1.4.0", "2026-10-19", "abc123"), "1.4.0 (abc123, 2026-10-19)"},
		{"version only", NewAppBuildInfo(" 1.4.0 ", "", ""), "1.4.0"},
		{"no version", NewAppBuildInfo("", "", "abc123"), "dev (abc123)"},
		{"zero value", AppBuildInfo{}, "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestAppBuildInfo_Accessors(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-19", "abc123")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-10-19", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}
