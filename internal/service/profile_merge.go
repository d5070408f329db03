package service

import (
	"reflect"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-lingo/models"
)

// timeTransformer lets mergo treat time.Time as a scalar: a non-zero source
// replaces the destination, a zero source leaves it alone.
type timeTransformer struct{}

func (timeTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(time.Time{}) {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.Interface().(time.Time).IsZero() {
			dst.Set(src)
		}
		return nil
	}
}

// mergeProfile returns base with every non-zero field of patch applied. It
// serves partial patches such as the trial start response.
func mergeProfile(base, patch models.UserProfile) (models.UserProfile, error) {
	merged := base
	if err := mergo.Merge(&merged, patch, mergo.WithOverride, mergo.WithTransformers(timeTransformer{})); err != nil {
		return models.UserProfile{}, err
	}

	return merged, nil
}

// applyStatus returns base with every subscription field taken from status,
// zero values included, so fields the backend cleared are cleared locally.
// Only the email survives from base.
func applyStatus(base models.UserProfile, status models.StatusResponse) models.UserProfile {
	applied := status.ProfilePatch()
	applied.Email = base.Email
	return applied
}
