package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrMissingInput", ErrMissingInput},
		{"ErrMalformedSource", ErrMalformedSource},
		{"ErrTransformFailure", ErrTransformFailure},
		{"ErrOutputWrite", ErrOutputWrite},
		{"ErrPipelineClosed", ErrPipelineClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	all := []error{
		ErrNotFound, ErrInvalidInput, ErrMissingInput, ErrMalformedSource,
		ErrTransformFailure, ErrOutputWrite, ErrPipelineClosed,
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

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("page 42: %w", ErrTransformFailure)
	assert.ErrorIs(t, err, ErrTransformFailure)
	assert.NotErrorIs(t, err, ErrMalformedSource)
	assert.Equal(t, "page 42: transform failure", err.Error())
}
