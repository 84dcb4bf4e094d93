package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest(42, 10, 3)

	require.Equal(t, uint64(42), req.ID)
	require.Equal(t, uint32(10), req.Cost)
	require.Equal(t, uint8(3), req.Priority)
}
