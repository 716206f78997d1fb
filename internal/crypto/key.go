// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the length of a derived per-user key (AES-256).
	KeySize = 32

	keySalt       = "progress-keeper-field-encryption"
	keyInfoPrefix = "progress-keeper/field/v1:"
)

// DeriveUserKey derives the per-user field key from the master secret with
// HKDF-SHA256. The result depends only on masterKey and userID, so the same
// user gets the same key across restarts while distinct users get unrelated
// keys.
func DeriveUserKey(masterKey []byte, userID string) ([]byte, error) {
	if len(masterKey) == 0 {
		return nil, ErrMissingMasterKey
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	reader := hkdf.New(sha256.New, masterKey, []byte(keySalt), []byte(keyInfoPrefix+userID))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("hkdf derivation failed: %w", err)
	}

	return key, nil
}
