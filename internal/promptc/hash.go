package promptc

import (
	"crypto/sha256"
	"encoding/hex"
)

// contextHashLen is the length of the hex fingerprint returned by ContextHash.
const contextHashLen = 16

// hashSeparator keeps ("ab", "c") and ("a", "bc") from colliding.
const hashSeparator = "||"

// ContextHash returns a short deterministic fingerprint of the compiled
// prompt pair, used as a cache/identity key. It is not a security primitive.
// Empty inputs are valid and hash like any other string.
func ContextHash(projectPrompt, copyPrompt string) string {
	h := sha256.Sum256([]byte(projectPrompt + hashSeparator + copyPrompt))
	return hex.EncodeToString(h[:])[:contextHashLen]
}
