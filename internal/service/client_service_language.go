package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/store"
	"github.com/MKhiriev/go-lingo/models"
)

type clientLanguageService struct {
	preferences store.PreferenceStore

	mu      sync.RWMutex
	current string

	logger *logger.Logger
}

// NewClientLanguageService returns a language service starting at
// defaultLanguage, or [models.DefaultLanguage] when that is empty.
func NewClientLanguageService(preferences store.PreferenceStore, defaultLanguage string, logger *logger.Logger) ClientLanguageService {
	if defaultLanguage == "" {
		defaultLanguage = models.DefaultLanguage
	}

	return &clientLanguageService{preferences: preferences, current: defaultLanguage, logger: logger}
}

func (l *clientLanguageService) Load(ctx context.Context) string {
	lang, err := l.preferences.LoadLanguage(ctx)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
	case err != nil:
		l.logger.Err(err).
			Str("func", "clientLanguageService.Load").
			Msg("error loading language preference")
	case lang != "":
		l.mu.Lock()
		l.current = lang
		l.mu.Unlock()
	}

	return l.Current()
}

func (l *clientLanguageService) Set(ctx context.Context, lang string) error {
	if !isSupportedLanguage(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	if err := l.preferences.SaveLanguage(ctx, lang); err != nil {
		l.logger.Err(err).
			Str("func", "clientLanguageService.Set").
			Msg("error saving language preference")
		return err
	}

	l.mu.Lock()
	l.current = lang
	l.mu.Unlock()

	return nil
}

func (l *clientLanguageService) Current() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

func (l *clientLanguageService) Languages() []models.Language {
	return slices.Clone(models.Languages)
}

func (l *clientLanguageService) Filter(query string) []models.Language {
	query = strings.ToLower(query)

	out := make([]models.Language, 0, len(models.Languages))
	for _, lang := range models.Languages {
		if strings.Contains(strings.ToLower(lang.Label), query) {
			out = append(out, lang)
		}
	}

	return out
}

func isSupportedLanguage(lang string) bool {
	return slices.ContainsFunc(models.Languages, func(l models.Language) bool {
		return l.Value == lang
	})
}
