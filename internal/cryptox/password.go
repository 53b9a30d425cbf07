// Package cryptox hashes and verifies account passwords with argon2id.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/taskflow/internal/common"
)

const (
	hashScheme = "argon2id"
	saltSize   = 16
)

// DeriveKey stretches password with salt into a 32-byte key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// HashPassword returns "argon2id$<salt>$<key>" with a fresh random salt,
// both parts in unpadded standard base64.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltSize)
	key := DeriveKey(password, salt)

	enc := base64.RawStdEncoding
	return hashScheme + "$" + enc.EncodeToString(salt) + "$" + enc.EncodeToString(key)
}

// IsHash reports whether stored looks like a HashPassword result.
func IsHash(stored string) bool {
	_, _, ok := splitHash(stored)
	return ok
}

// VerifyPassword checks password against stored. Values that are not hashes
// are legacy plain passwords and are compared as-is, in constant time.
func VerifyPassword(stored string, password []byte) bool {
	salt, key, ok := splitHash(stored)
	if !ok {
		return subtle.ConstantTimeCompare([]byte(stored), password) == 1
	}
	return subtle.ConstantTimeCompare(key, DeriveKey(password, salt)) == 1
}

func splitHash(stored string) (salt, key []byte, ok bool) {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != hashScheme {
		return nil, nil, false
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return nil, nil, false
	}
	key, err = enc.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return nil, nil, false
	}
	return salt, key, true
}
