package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	code := "482913"
	hash, err := hasher.Hash(code)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, code, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(code, hash))
}

func TestBcryptHasher_HashEmpty(t *testing.T) {
	hasher := NewBcryptHasher()

	_, err := hasher.Hash("")
	assert.Error(t, err)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	code := "007731"

	// Generate hash
	hash, err := hasher.Hash(code)
	assert.NoError(t, err)

	// Test correct code
	assert.True(t, hasher.Check(code, hash))

	// Test incorrect code
	assert.False(t, hasher.Check("007732", hash))

	// Test empty code
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(code, "invalid_hash"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("123456")
	assert.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
