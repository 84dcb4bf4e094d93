package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		require.True(t, errors.Is(ErrCapacityExceeded, ErrCapacityExceeded))
		require.False(t, errors.Is(ErrCapacityExceeded, ErrNoAcceleratorAvailable))

		// Wrapped errors maintain identity.
		wrapped := fmt.Errorf("accelerator 7: %w", ErrCapacityExceeded)
		require.True(t, errors.Is(wrapped, ErrCapacityExceeded))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrCapacityExceeded,
			ErrInvalidConfig,
			ErrStrategyRequired,
			ErrNoAcceleratorAvailable,
			ErrUnknownStrategy,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})

	t.Run("all errors have non-empty messages", func(t *testing.T) {
		require.NotEmpty(t, ErrCapacityExceeded.Error())
		require.NotEmpty(t, ErrInvalidConfig.Error())
		require.NotEmpty(t, ErrStrategyRequired.Error())
		require.NotEmpty(t, ErrNoAcceleratorAvailable.Error())
		require.NotEmpty(t, ErrUnknownStrategy.Error())
	})
}
