package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FingerprintServiceImpl implements ports.FingerprintService using SHA-256
// over a canonical JSON rendering. Kept free of any storage dependency so
// it can be tested in isolation.
type FingerprintServiceImpl struct{}

// NewFingerprintService creates a new FingerprintServiceImpl.
func NewFingerprintService() *FingerprintServiceImpl {
	return &FingerprintServiceImpl{}
}

// Fingerprint returns the hex SHA-256 digest of the canonical form of
// payload. Object keys are sorted recursively, so two payloads that differ
// only in key order produce the same digest.
func (s *FingerprintServiceImpl) Fingerprint(payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("normalize payload: %w", err)
	}

	var b strings.Builder
	if err := writeCanonical(&b, generic); err != nil {
		return "", err
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:]), nil
}

// writeCanonical renders a decoded JSON value with lexicographically sorted
// object keys. Scalars reuse encoding/json so number and string formatting
// stays byte-stable.
func writeCanonical(b *strings.Builder, v any) error {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			encKey, err := json.Marshal(k)
			if err != nil {
				return fmt.Errorf("encode key %q: %w", k, err)
			}
			b.Write(encKey)
			b.WriteByte(':')
			if err := writeCanonical(b, val[k]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
		return nil

	case []any:
		b.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeCanonical(b, item); err != nil {
				return err
			}
		}
		b.WriteByte(']')
		return nil

	default:
		enc, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("encode scalar: %w", err)
		}
		b.Write(enc)
		return nil
	}
}
