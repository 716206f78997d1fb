package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/crypto"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// columnKeys are JSON keys that live in table columns rather than in the
// JSONB body.
var columnKeys = []string{"id", "userId", "day", "parentId", "createdAt", "updatedAt"}

// documentCodec converts typed models to storage documents and back,
// encrypting the listed fields on the way in and decrypting them on the way
// out. contentKey, when set, names a planner content tree walked by the
// codec's content methods.
type documentCodec struct {
	codec      crypto.Codec
	fields     models.FieldSet
	contentKey string
}

func (c documentCodec) encode(ctx context.Context, v any, userID string) (models.Record, error) {
	rec, err := models.ToRecord(v)
	if err != nil {
		return nil, err
	}

	for _, k := range columnKeys {
		delete(rec, k)
	}

	rec = c.codec.EncryptFields(ctx, rec, c.fields, userID)
	if c.contentKey != "" {
		if blocks, ok := rec[c.contentKey].([]any); ok {
			rec[c.contentKey] = c.codec.EncryptContent(ctx, blocks, userID)
		}
	}

	return rec, nil
}

// decode fills target from doc. The column values are merged back into the
// record so the target's id, owner, day and timestamps are populated too.
func (c documentCodec) decode(ctx context.Context, doc models.Document, target any) error {
	rec := c.codec.DecryptFields(ctx, doc.Data, c.fields, doc.UserID)
	if rec == nil {
		rec = models.Record{}
	}
	if c.contentKey != "" {
		if blocks, ok := rec[c.contentKey].([]any); ok {
			rec[c.contentKey] = c.codec.DecryptContent(ctx, blocks, doc.UserID)
		}
	}

	rec["id"] = doc.ID
	rec["userId"] = doc.UserID
	if doc.Day != nil {
		rec["day"] = doc.Day.Format(time.RFC3339Nano)
	}
	if doc.ParentID != nil {
		rec["parentId"] = *doc.ParentID
	}
	if !doc.CreatedAt.IsZero() {
		rec["createdAt"] = doc.CreatedAt.Format(time.RFC3339Nano)
	}
	if !doc.UpdatedAt.IsZero() {
		rec["updatedAt"] = doc.UpdatedAt.Format(time.RFC3339Nano)
	}

	if err := models.FromRecord(rec, target); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptedDocument, err)
	}

	return nil
}
