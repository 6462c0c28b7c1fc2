package reconcile

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"token-bridge/core/tokens"
)

// cacheInput is the full input of Compare, serialized for hashing.
type cacheInput struct {
	Snapshot *Snapshot      `json:"snapshot"`
	Tokens   []tokens.Token `json:"tokens"`
	Mode     string         `json:"mode"`
}

// CacheKey returns a content hash of the complete Compare input. Results may
// only be reused for inputs that produce the same key.
func CacheKey(snapshot *Snapshot, toks []tokens.Token, mode string) (string, error) {
	payload, err := json.Marshal(cacheInput{Snapshot: snapshot, Tokens: toks, Mode: mode})
	if err != nil {
		return "", fmt.Errorf("failed to encode compare input: %w", err)
	}
	sum := sha256.Sum256(payload)
	return "compare:" + hex.EncodeToString(sum[:]), nil
}
