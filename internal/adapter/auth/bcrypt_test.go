package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskflow/internal/adapter/auth"
	"taskflow/internal/core/ports"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.NoError(t, hasher.Compare(hash, "secret1"))
	require.ErrorIs(t, hasher.Compare(hash, "secret2"), ports.ErrPasswordMismatch)
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hash, err := auth.NewBcryptHasher(bcrypt.MinCost + 1).Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.MinCost+1, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hash, err := auth.NewBcryptHasher(99).Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, auth.DefaultBcryptCost, cost)
}

func TestBcryptHasher_CompareMalformedHash(t *testing.T) {
	err := auth.NewBcryptHasher(bcrypt.MinCost).Compare("not-a-hash", "secret1")
	require.Error(t, err)
	require.NotErrorIs(t, err, ports.ErrPasswordMismatch)
}
