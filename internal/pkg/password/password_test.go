package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, Verify("secret123", hash))
	assert.False(t, Verify("wrong", hash))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same")
	require.NoError(t, err)
	h2, err := Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
