package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CheckAdminPassword verifies a supplied password against the
// configured one. When the configuration holds a bcrypt hash (the
// recommended deployment), the comparison goes through bcrypt;
// otherwise a constant-time equality check is used so a plain-text
// password in a dev .env still works.
func CheckAdminPassword(configured, supplied string) bool {
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}
