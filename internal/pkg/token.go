package pkg

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/pbkdf2"
)

const tokenIterations = 4096

// HashToken derives the bearer token from (id, password). Deterministic so
// the stored token can be compared by equality on auth.
func HashToken(id uint64, password string) string {
	salt := []byte(strconv.FormatUint(id, 10))
	key := pbkdf2.Key([]byte(password), salt, tokenIterations, 20, sha256.New)
	return hex.EncodeToString(key)
}
