package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/utilkit/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	all := []error{
		domain.ErrInvalidArgument,
		domain.ErrNotFound,
		domain.ErrMalformedData,
		domain.ErrIOFailure,
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestErrors_SurviveWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("%w: write report.json: %w", domain.ErrIOFailure, cause)

	assert.ErrorIs(t, err, domain.ErrIOFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
