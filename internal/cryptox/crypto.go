// Package cryptox derives the password fields stored on a user record.
// Only the salt and verifier are persisted; the password itself never is.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"golang.org/x/crypto/argon2"
)

const saltSize = 32

// DeriveMasterKey stretches password with argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key so it can be stored and compared.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// NewPasswordFields returns a fresh salt and the verifier for password.
func NewPasswordFields(password []byte) (salt, verifier []byte) {
	salt = common.GenerateRandByteArray(saltSize)
	key := DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	return salt, MakeVerifier(key)
}

// CheckPassword reports whether password matches the stored salt/verifier.
func CheckPassword(password, salt, verifier []byte) bool {
	if len(salt) == 0 || len(verifier) == 0 {
		return false
	}
	key := DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(verifier, MakeVerifier(key)) == 1
}
