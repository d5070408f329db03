// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lingo/models"
)

func assertValidationMessage(t *testing.T, err error, want string) {
	t.Helper()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	assert.Equal(t, want, verr.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInputValidator_Sentence(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		sentence string
		wantMsg  string
	}{
		{name: "valid", sentence: "Je suis fatigué"},
		{name: "exactly 100", sentence: strings.Repeat("a", 100)},
		{name: "empty", sentence: "", wantMsg: "Please provide a sentence"},
		{name: "101 characters", sentence: strings.Repeat("a", 101), wantMsg: "The sentence must be less than 100 characters."},
		{name: "whitespace only passes", sentence: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.SentenceRequest{Sentence: tt.sentence, NativeLanguage: "English"})
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assertValidationMessage(t, err, tt.wantMsg)
		})
	}
}

func TestInputValidator_Word(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		word    string
		wantMsg string
	}{
		{name: "valid", word: "serendipity"},
		{name: "exactly 30", word: strings.Repeat("a", 30)},
		{name: "empty", word: "", wantMsg: "Please provide a word"},
		{name: "digit", word: "abc1", wantMsg: "Words should not contain numbers"},
		{name: "too long", word: strings.Repeat("a", 31), wantMsg: "Word length too long. Must be less than 30 characters. If this is a sentence, please use the analyser"},
		{name: "phrase", word: "two words", wantMsg: "This looks like a phrase. Please use the 'Analyzer'"},
		{name: "digit reported before space", word: "a1 b", wantMsg: "Words should not contain numbers"},
		{name: "digit reported before length", word: strings.Repeat("a", 31) + "1", wantMsg: "Words should not contain numbers"},
		{name: "length reported before space", word: strings.Repeat("ab ", 11), wantMsg: "Word length too long. Must be less than 30 characters. If this is a sentence, please use the analyser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &models.WordRequest{Word: tt.word})
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assertValidationMessage(t, err, tt.wantMsg)
		})
	}
}

func TestInputValidator_Credentials(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "alice@example.com", Password: "pw"}))

	assertValidationMessage(t, v.Validate(ctx, models.Credentials{Password: "pw"}), "Please provide an email")
	assertValidationMessage(t, v.Validate(ctx, models.Credentials{Email: "alice", Password: "pw"}), "Please provide a valid email address")
	assertValidationMessage(t, v.Validate(ctx, models.Credentials{Email: "alice@example.com"}), "Please provide a password")

	// email is declared first and wins
	assertValidationMessage(t, v.Validate(ctx, models.Credentials{}), "Please provide an email")
}

func TestInputValidator_EmailUpdate(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.EmailUpdate{Email: "new@example.com"}))
	assertValidationMessage(t, v.Validate(ctx, models.EmailUpdate{Email: "not-an-email"}), "Please provide a valid email address")
}

func TestInputValidator_FieldScoping(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.Credentials{}, FieldPassword)
	assertValidationMessage(t, err, "Please provide a password")

	err = v.Validate(ctx, models.Credentials{Email: "alice@example.com"}, FieldEmail)
	assert.NoError(t, err)

	err = v.Validate(ctx, models.Credentials{}, "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestInputValidator_UnsupportedType(t *testing.T) {
	v := NewInputValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "plain string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.UserProfile{}), ErrUnsupportedType)
}

func TestValidationError_Fields(t *testing.T) {
	err := NewInputValidator().Validate(context.Background(), models.WordRequest{Word: "x y"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldWord, verr.Field)
	assert.Equal(t, tagNoSpaces, verr.Tag)
}
