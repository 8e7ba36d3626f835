package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordLength is bcrypt's input limit in bytes. Longer inputs are
// rejected both at hash and at verify time so the two paths never disagree.
const maxPasswordLength = 72

// ErrPasswordTooLong is returned when a credential exceeds bcrypt's safe
// input length.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// HashPassword returns the bcrypt hash of the given plaintext credential
// using the default cost. The per-hash salt is embedded in the output
// string, so two hashes of the same password differ.
func HashPassword(plain string) (string, error) {
	if len(plain) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}

	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// VerifyPassword compares a stored bcrypt hash with a plaintext candidate.
// The comparison is constant-time relative to the stored hash. Over-long
// candidates fail verification without reaching bcrypt, mirroring the
// rejection applied at hash time.
func VerifyPassword(hash, plain string) bool {
	if len(plain) > maxPasswordLength {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
