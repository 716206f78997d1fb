// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements field-level encryption of user documents.
//
// Every user gets an AES-256-GCM key derived from a process-wide master
// secret (see [DeriveUserKey]). Sensitive string fields are stored as
// "enc:v1:" followed by base64(nonce ‖ ciphertext ‖ tag). A fresh nonce is
// drawn for every call, so equal plaintexts never produce equal ciphertexts.
package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// contentChildren lists, per nesting level of a planner content tree, the
// key holding the next level of nodes.
var contentChildren = []string{"listItems", "subItems"}

// FieldCodec is the [Codec] implementation. The master secret is injected at
// construction and never changes afterwards, so a FieldCodec is safe for
// concurrent use.
type FieldCodec struct {
	masterKey []byte
	log       *logger.Logger
}

// NewFieldCodec builds a codec from the application config. It refuses to
// operate without a master secret and returns [ErrMissingMasterKey].
func NewFieldCodec(cfg config.App, log *logger.Logger) (*FieldCodec, error) {
	if cfg.EncryptionKey == "" {
		return nil, ErrMissingMasterKey
	}
	if log == nil {
		log = logger.Nop()
	}

	return &FieldCodec{
		masterKey: []byte(cfg.EncryptionKey),
		log:       log,
	}, nil
}

// Encrypt seals plain under userID's key and returns the enveloped value.
func (c *FieldCodec) Encrypt(plain, userID string) (string, error) {
	gcm, err := c.aead(userID)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// nonce || ciphertext || tag
	blob := gcm.Seal(nonce, nonce, []byte(plain), nil)

	return EnvelopePrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt opens an enveloped or legacy bare-base64 value under userID's key.
// Values that do not look encrypted yield [ErrNotEncrypted]; a wrong key or a
// tampered value yields [ErrDecryptionFailed].
func (c *FieldCodec) Decrypt(stored, userID string) (string, error) {
	var encoded string
	switch {
	case IsEnveloped(stored):
		encoded = strings.TrimPrefix(stored, EnvelopePrefix)
	case looksLikeLegacy(stored):
		encoded = stored
	default:
		return "", ErrNotEncrypted
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := c.aead(userID)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return "", ErrCiphertextTooShort
	}

	plain, err := gcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plain), nil
}

// EncryptFields implements [Codec]. Absent, nil, non-string and empty values
// are left untouched. Every other string is encrypted, including text that
// merely starts with the envelope prefix.
func (c *FieldCodec) EncryptFields(ctx context.Context, rec models.Record, fields models.FieldSet, userID string) models.Record {
	if rec == nil {
		return nil
	}

	out := rec.Clone()
	log := c.logger(ctx)
	for _, field := range fields {
		value, ok := out[field].(string)
		if !ok || value == "" {
			continue
		}

		encrypted, err := c.Encrypt(value, userID)
		if err != nil {
			log.Warn().Err(err).Str("field", field).Msg("field encryption failed, keeping original value")
			continue
		}
		out[field] = encrypted
	}

	return out
}

// DecryptFields implements [Codec]. Values that fail to decrypt, including
// ciphertext of another user, are returned unchanged.
func (c *FieldCodec) DecryptFields(ctx context.Context, rec models.Record, fields models.FieldSet, userID string) models.Record {
	if rec == nil {
		return nil
	}

	out := rec.Clone()
	log := c.logger(ctx)
	for _, field := range fields {
		value, ok := out[field].(string)
		if !ok || !LooksEncrypted(value) {
			continue
		}

		plain, err := c.Decrypt(value, userID)
		if err != nil {
			log.Warn().Err(err).Str("field", field).Msg("field decryption failed, keeping stored value")
			continue
		}
		out[field] = plain
	}

	return out
}

// EncryptArray implements [Codec].
func (c *FieldCodec) EncryptArray(ctx context.Context, recs []models.Record, fields models.FieldSet, userID string) []models.Record {
	if recs == nil {
		return nil
	}

	out := make([]models.Record, len(recs))
	for i, rec := range recs {
		out[i] = c.EncryptFields(ctx, rec, fields, userID)
	}

	return out
}

// DecryptArray implements [Codec].
func (c *FieldCodec) DecryptArray(ctx context.Context, recs []models.Record, fields models.FieldSet, userID string) []models.Record {
	if recs == nil {
		return nil
	}

	out := make([]models.Record, len(recs))
	for i, rec := range recs {
		out[i] = c.DecryptFields(ctx, rec, fields, userID)
	}

	return out
}

// EncryptContent implements [Codec].
func (c *FieldCodec) EncryptContent(ctx context.Context, blocks []any, userID string) []any {
	log := c.logger(ctx)

	return walkContent(blocks, 0, func(text string) string {
		encrypted, err := c.Encrypt(text, userID)
		if err != nil {
			log.Warn().Err(err).Msg("content encryption failed, keeping original value")
			return text
		}

		return encrypted
	})
}

// DecryptContent implements [Codec].
func (c *FieldCodec) DecryptContent(ctx context.Context, blocks []any, userID string) []any {
	log := c.logger(ctx)

	return walkContent(blocks, 0, func(text string) string {
		if !LooksEncrypted(text) {
			return text
		}

		plain, err := c.Decrypt(text, userID)
		if err != nil {
			log.Warn().Err(err).Msg("content decryption failed, keeping stored value")
			return text
		}

		return plain
	})
}

func (c *FieldCodec) aead(userID string) (cipher.AEAD, error) {
	key, err := DeriveUserKey(c.masterKey, userID)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// logger prefers the request-scoped logger so warnings carry the trace id.
func (c *FieldCodec) logger(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}

	return c.log
}

// walkContent copies a content tree, applying transform to every non-empty
// "content" string. Nodes that are not objects are copied as is.
func walkContent(nodes []any, level int, transform func(string) string) []any {
	if nodes == nil {
		return nil
	}

	out := make([]any, len(nodes))
	for i, n := range nodes {
		var node map[string]any
		switch v := n.(type) {
		case map[string]any:
			node = maps.Clone(v)
		case models.Record:
			node = maps.Clone(v)
		default:
			out[i] = n
			continue
		}

		if text, ok := node["content"].(string); ok && text != "" {
			node["content"] = transform(text)
		}

		if level < len(contentChildren) {
			key := contentChildren[level]
			if children, ok := node[key].([]any); ok {
				node[key] = walkContent(children, level+1, transform)
			}
		}

		out[i] = node
	}

	return out
}
