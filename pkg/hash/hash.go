package hash

import "golang.org/x/crypto/bcrypt"

// Password hashes a raw password with bcrypt at the default cost.
func Password(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether raw matches the stored bcrypt hash.
func Verify(raw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}
