package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yourssu.com/blog/internal/service"
)

func TestBcryptHasher(t *testing.T) {
	hasher := service.NewBcryptHasher()

	hash, err := hasher.Hash("secret-pw")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pw", hash)

	assert.True(t, hasher.Verify("secret-pw", hash))
	assert.False(t, hasher.Verify("wrong-pw", hash))
	assert.False(t, hasher.Verify("secret-pw", "not-a-hash"))
}
