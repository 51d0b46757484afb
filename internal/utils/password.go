package utils

import (
	"golang.org/x/crypto/bcrypt"
)

var hashCost = 12

// SetHashCost tunes the bcrypt work factor. Values outside bcrypt's valid
// range fall back to the library default.
func SetHashCost(cost int) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashCost = cost
}

// HashPassword returns an irreversible salted hash of the plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext attempt against a stored hash using
// bcrypt's constant-time comparison.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
