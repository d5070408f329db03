// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/go-playground/validator"

	"github.com/MKhiriev/go-lingo/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the Go field names of the request models.
const (
	FieldEmail    = "Email"
	FieldPassword = "Password"
	FieldSentence = "Sentence"
	FieldWord     = "Word"
)

// Custom tags registered on top of the validator built-ins.
const (
	tagNoDigits = "nodigits"
	tagNoSpaces = "nospaces"
)

// messages maps "<Field>.<tag>" to the text shown to the user.
var messages = map[string]string{
	"Email.required":    "Please provide an email",
	"Email.email":       "Please provide a valid email address",
	"Password.required": "Please provide a password",

	"Sentence.required": "Please provide a sentence",
	"Sentence.max":      "The sentence must be less than 100 characters.",

	"Word.required": "Please provide a word",
	"Word.nodigits": "Words should not contain numbers",
	"Word.max":      "Word length too long. Must be less than 30 characters. If this is a sentence, please use the analyser",
	"Word.nospaces": "This looks like a phrase. Please use the 'Analyzer'",
}

// InputValidator implements [Validator] for the request models the client
// sends: [models.Credentials], [models.EmailUpdate], [models.SentenceRequest]
// and [models.WordRequest]. Value and pointer forms are accepted.
type InputValidator struct {
	validate *validator.Validate
}

// NewInputValidator returns a [Validator] with the custom tags registered.
func NewInputValidator() Validator {
	v := validator.New()
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation(tagNoDigits, noDigits)
	_ = v.RegisterValidation(tagNoSpaces, noSpaces)

	return &InputValidator{validate: v}
}

// Validate checks obj against its struct tags and returns the first broken
// rule as a [*ValidationError]. When fields are given only those are checked.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials, models.EmailUpdate, models.SentenceRequest, models.WordRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.Credentials:
		return v.validateStruct(ctx, *value, fields...)
	case *models.EmailUpdate:
		return v.validateStruct(ctx, *value, fields...)
	case *models.SentenceRequest:
		return v.validateStruct(ctx, *value, fields...)
	case *models.WordRequest:
		return v.validateStruct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	for _, f := range fields {
		if !isKnownField(f) {
			return ErrUnknownField
		}
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.StructField()) {
			continue
		}
		return newValidationError(fe)
	}

	return nil
}

func newValidationError(fe validator.FieldError) *ValidationError {
	msg, ok := messages[fe.StructField()+"."+fe.Tag()]
	if !ok {
		msg = strings.ToLower(fe.StructField()) + " is not valid"
	}

	return &ValidationError{Field: fe.StructField(), Tag: fe.Tag(), Message: msg}
}

func isKnownField(f string) bool {
	switch f {
	case FieldEmail, FieldPassword, FieldSentence, FieldWord:
		return true
	default:
		return false
	}
}

func noDigits(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "0123456789")
}

func noSpaces(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), " ")
}
