package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost keeps verification in the tens-of-milliseconds range:
// slow enough against offline brute force, fast enough for login.
const bcryptCost = 12

// HashPassword derives a salted one-way hash from the plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares plaintext against the stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
