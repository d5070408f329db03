package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-lingo/internal/adapter"
	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/utils"
	"github.com/MKhiriev/go-lingo/internal/validators"
	"github.com/MKhiriev/go-lingo/models"
)

type clientLearningService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	language  ClientLanguageService

	logger *logger.Logger
}

// NewClientLearningService returns a learning service that sends requests in
// language.Current().
func NewClientLearningService(serverAdapter adapter.ServerAdapter, validator validators.Validator, language ClientLanguageService, logger *logger.Logger) ClientLearningService {
	return &clientLearningService{adapter: serverAdapter, validator: validator, language: language, logger: logger}
}

type sentenceCall func(ctx context.Context, req models.SentenceRequest) (string, error)

func (l *clientLearningService) ExplainSentence(ctx context.Context, sentence string) (string, error) {
	return l.sentence(ctx, "clientLearningService.ExplainSentence", sentence, l.adapter.ExplainSentence)
}

func (l *clientLearningService) CorrectSentence(ctx context.Context, sentence string) (string, error) {
	return l.sentence(ctx, "clientLearningService.CorrectSentence", sentence, l.adapter.CorrectSentence)
}

func (l *clientLearningService) sentence(ctx context.Context, fn, sentence string, call sentenceCall) (string, error) {
	req := models.SentenceRequest{Sentence: sentence, NativeLanguage: l.language.Current()}
	if err := l.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	raw, err := call(ctx, req)
	if err != nil {
		l.logger.Err(err).Str("func", fn).Msg("sentence request failed")
		return "", err
	}

	return utils.CleanResponseText(raw), nil
}

func (l *clientLearningService) LookupWord(ctx context.Context, word string) (models.WordLookup, error) {
	req := models.WordRequest{Word: word, NativeLanguage: l.language.Current()}
	if err := l.validator.Validate(ctx, req); err != nil {
		return models.WordLookup{}, err
	}

	var definition, synonyms, history string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		definition, err = l.adapter.DefineWord(gctx, req)
		return err
	})
	g.Go(func() (err error) {
		synonyms, err = l.adapter.WordSynonyms(gctx, req)
		return err
	})
	g.Go(func() (err error) {
		history, err = l.adapter.WordHistory(gctx, req)
		return err
	})

	if err := g.Wait(); err != nil {
		l.logger.Err(err).
			Str("func", "clientLearningService.LookupWord").
			Str("word", word).
			Msg("word lookup failed")
		return models.WordLookup{}, err
	}

	return models.WordLookup{
		Word:       word,
		Definition: utils.CleanResponseText(definition),
		Synonyms:   utils.CleanResponseText(synonyms),
		History:    utils.CleanResponseText(history),
	}, nil
}
