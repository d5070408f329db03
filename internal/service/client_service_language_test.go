package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/mock"
	"github.com/MKhiriev/go-lingo/internal/store"
	"github.com/MKhiriev/go-lingo/models"
)

func TestLanguageService_DefaultIsEnglish(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientLanguageService(mock.NewMockPreferenceStore(ctrl), "", logger.Nop())

	assert.Equal(t, models.DefaultLanguage, svc.Current())
}

func TestLanguageService_Load(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		err    error
		want   string
	}{
		{name: "stored preference", stored: "French", want: "French"},
		{name: "nothing stored", err: store.ErrKeyNotFound, want: "German"},
		{name: "read failure keeps default", err: errors.New("disk I/O error"), want: "German"},
		{name: "empty value keeps default", stored: "", want: "German"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			prefs := mock.NewMockPreferenceStore(ctrl)
			svc := NewClientLanguageService(prefs, "German", logger.Nop())

			prefs.EXPECT().LoadLanguage(gomock.Any()).Return(tt.stored, tt.err)

			assert.Equal(t, tt.want, svc.Load(context.Background()))
			assert.Equal(t, tt.want, svc.Current())
		})
	}
}

func TestLanguageService_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferenceStore(ctrl)
	svc := NewClientLanguageService(prefs, "", logger.Nop())

	prefs.EXPECT().SaveLanguage(gomock.Any(), "Japanese").Return(nil)

	require.NoError(t, svc.Set(context.Background(), "Japanese"))
	assert.Equal(t, "Japanese", svc.Current())
}

func TestLanguageService_Set_StoreFailureKeepsCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferenceStore(ctrl)
	svc := NewClientLanguageService(prefs, "", logger.Nop())

	storeErr := errors.New("read-only file system")
	prefs.EXPECT().SaveLanguage(gomock.Any(), "Korean").Return(storeErr)

	err := svc.Set(context.Background(), "Korean")

	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, models.DefaultLanguage, svc.Current())
}

func TestLanguageService_Set_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientLanguageService(mock.NewMockPreferenceStore(ctrl), "", logger.Nop())

	err := svc.Set(context.Background(), "Klingon")

	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Equal(t, models.DefaultLanguage, svc.Current())
}

func TestLanguageService_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientLanguageService(mock.NewMockPreferenceStore(ctrl), "", logger.Nop())

	assert.Len(t, svc.Filter(""), len(models.Languages))

	got := svc.Filter("MAN")
	labels := make([]string, 0, len(got))
	for _, l := range got {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"Chinese (Mandarin)", "German"}, labels)

	assert.Empty(t, svc.Filter("zzz"))
}

func TestLanguageService_LanguagesIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientLanguageService(mock.NewMockPreferenceStore(ctrl), "", logger.Nop())

	langs := svc.Languages()
	langs[0].Label = "changed"

	assert.NotEqual(t, "changed", models.Languages[0].Label)
}
