package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret", ""))
}

func TestNewRandIsReproducible(t *testing.T) {
	a := NewRand(42, 1)
	b := NewRand(42, 1)
	c := NewRand(42, 2)

	seqA := a.Perm(7)
	assert.Equal(t, seqA, b.Perm(7))
	assert.Len(t, c.Perm(7), 7)
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}
