package auth

import (
	"testing"

	"github.com/BeMaTech82/hortago/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("mot-de-passe-secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "mot-de-passe-secret", hash)

	assert.True(t, hasher.Check("mot-de-passe-secret", hash))
	assert.False(t, hasher.Check("mauvais-mot-de-passe", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("même-mot-de-passe")
	assert.NoError(t, err)
	second, err := hasher.Hash("même-mot-de-passe")
	assert.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("même-mot-de-passe", first))
	assert.True(t, hasher.Check("même-mot-de-passe", second))
}

func TestBcryptHasher_DefaultCostFallback(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.NotZero(t, hasher.cost)
}
