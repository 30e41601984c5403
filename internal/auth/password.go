package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt work factor; matches the reference deployment
const bcryptCost = 10

// produces a randomly salted one-way hash of the plaintext password
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// checks a plaintext password against a stored hash. A mismatch is a normal
// false result, not an error.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
