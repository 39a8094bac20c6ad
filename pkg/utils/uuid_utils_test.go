package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUIDv7(t *testing.T) {
	id := GenerateUUIDv7()
	require.NotEqual(t, uuid.Nil, id)
	require.NotEqual(t, id, GenerateUUIDv7())
}
