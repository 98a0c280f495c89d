package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// hashCost is the bcrypt work factor for admin passwords.
	hashCost = 12
	// maxPasswordBytes is bcrypt's input limit; longer passwords are rejected
	// rather than silently truncated.
	maxPasswordBytes = 72
)

// HashPassword hashes a plain password using bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("password cannot exceed %d bytes", maxPasswordBytes)
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(bytes), err
}

// CheckPassword compares plain password with hashed password.
func CheckPassword(plain, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
