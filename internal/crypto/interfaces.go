package crypto

import (
	"context"

	"github.com/MKhiriev/go-progress-keeper/models"
)

// Codec encrypts and decrypts the sensitive fields of document records
// under per-user keys.
//
// Field-level methods never fail: a field whose cipher call errors keeps its
// original value and the failure is logged at warn level. Inputs are never
// mutated; every method returns fresh copies.
type Codec interface {
	// EncryptFields returns a shallow copy of rec with every named,
	// non-empty string field replaced by its ciphertext.
	EncryptFields(ctx context.Context, rec models.Record, fields models.FieldSet, userID string) models.Record

	// DecryptFields returns a shallow copy of rec with every named field
	// that looks encrypted replaced by its plaintext.
	DecryptFields(ctx context.Context, rec models.Record, fields models.FieldSet, userID string) models.Record

	// EncryptArray applies EncryptFields element-wise, preserving order.
	EncryptArray(ctx context.Context, recs []models.Record, fields models.FieldSet, userID string) []models.Record

	// DecryptArray applies DecryptFields element-wise, preserving order.
	DecryptArray(ctx context.Context, recs []models.Record, fields models.FieldSet, userID string) []models.Record

	// EncryptContent walks a planner content tree (blocks, listItems,
	// subItems) and encrypts every "content" text.
	EncryptContent(ctx context.Context, blocks []any, userID string) []any

	// DecryptContent is the inverse of EncryptContent. Only leaves that
	// look encrypted are touched.
	DecryptContent(ctx context.Context, blocks []any, userID string) []any
}
