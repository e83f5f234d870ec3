package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Keyer builds cache keys for pipeline stages. Keys are content-addressed:
// the records hash and the option set are hashed together, so any change to
// either invalidates naturally with no explicit eviction.
type Keyer struct {
	// Prefix namespaces keys, e.g. per application version.
	Prefix string
}

// NewKeyer returns a Keyer with the default "schemeline" prefix.
func NewKeyer() Keyer {
	return Keyer{Prefix: "schemeline"}
}

// StageKey builds a key for one pipeline stage from the records content
// hash and the stage-relevant option values.
func (k Keyer) StageKey(stage, recordsHash string, opts any) string {
	optData, _ := json.Marshal(opts)
	sum := sha256.Sum256(append([]byte(recordsHash), optData...))
	return fmt.Sprintf("%s:%s:%s", k.Prefix, stage, hex.EncodeToString(sum[:]))
}
