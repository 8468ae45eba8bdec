package spec

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const hashPrefix = "sha256:"

// IntentHash computes the content hash of a canonical spec document.
// The document is canonicalized first (sorted keys, compact encoding) so the
// hash is stable across whitespace and key-order differences.
func IntentHash(doc []byte) (string, error) {
	canonical, err := Canonicalize(doc)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(canonical)
	return hashPrefix + hex.EncodeToString(h[:]), nil
}

// Canonicalize re-encodes a JSON document in canonical form: compact, with
// object keys sorted. encoding/json sorts map keys on marshal, which gives us
// the sorted property once the document is decoded into interface{} values.
func Canonicalize(doc []byte) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize: %w", err)
	}
	return out, nil
}
