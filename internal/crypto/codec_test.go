package crypto

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/models"
)

func newTestCodec(t *testing.T) *FieldCodec {
	t.Helper()
	codec, err := NewFieldCodec(config.App{EncryptionKey: "test-master-secret"}, logger.Nop())
	require.NoError(t, err)
	return codec
}

func TestNewFieldCodec_MissingMasterKey(t *testing.T) {
	codec, err := NewFieldCodec(config.App{}, logger.Nop())

	assert.Nil(t, codec)
	assert.ErrorIs(t, err, ErrMissingMasterKey)
}

func TestNewFieldCodec_NilLogger(t *testing.T) {
	codec, err := NewFieldCodec(config.App{EncryptionKey: "k"}, nil)

	require.NoError(t, err)
	assert.NotNil(t, codec.log)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	for _, plain := range []string{"a", "Read 20 pages", "ünïcødé ✓", strings.Repeat("x", 4096)} {
		encrypted, err := codec.Encrypt(plain, "user-1")
		require.NoError(t, err)
		assert.True(t, IsEnveloped(encrypted))
		assert.NotContains(t, encrypted, plain)

		decrypted, err := codec.Decrypt(encrypted, "user-1")
		require.NoError(t, err)
		assert.Equal(t, plain, decrypted)
	}
}

func TestEncrypt_NonDeterministicCiphertext(t *testing.T) {
	codec := newTestCodec(t)

	c1, err := codec.Encrypt("same text", "user-1")
	require.NoError(t, err)
	c2, err := codec.Encrypt("same text", "user-1")
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2)

	p1, err := codec.Decrypt(c1, "user-1")
	require.NoError(t, err)
	p2, err := codec.Decrypt(c2, "user-1")
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestEncrypt_EmptyUserID(t *testing.T) {
	codec := newTestCodec(t)

	_, err := codec.Encrypt("text", "")
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestDecrypt_WrongUserFailsClosed(t *testing.T) {
	codec := newTestCodec(t)

	encrypted, err := codec.Encrypt("secret", "A")
	require.NoError(t, err)

	plain, err := codec.Decrypt(encrypted, "B")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Empty(t, plain)
}

func TestDecrypt_DifferentMasterKeyFails(t *testing.T) {
	codec := newTestCodec(t)
	other, err := NewFieldCodec(config.App{EncryptionKey: "another-secret"}, logger.Nop())
	require.NoError(t, err)

	encrypted, err := codec.Encrypt("secret", "user-1")
	require.NoError(t, err)

	_, err = other.Decrypt(encrypted, "user-1")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecrypt_Malformed(t *testing.T) {
	codec := newTestCodec(t)

	tests := []struct {
		name    string
		stored  string
		wantErr error
	}{
		{name: "plain text", stored: "buy milk", wantErr: ErrNotEncrypted},
		{name: "short envelope", stored: EnvelopePrefix + base64.StdEncoding.EncodeToString([]byte("tiny")), wantErr: ErrCiphertextTooShort},
		{name: "tampered envelope", stored: EnvelopePrefix + base64.StdEncoding.EncodeToString(make([]byte, 48)), wantErr: ErrDecryptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decrypt(tt.stored, "user-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := codec.Decrypt(EnvelopePrefix+"!!!not base64!!!", "user-1")
	assert.Error(t, err)
}

func TestDecrypt_LegacyBareBase64(t *testing.T) {
	codec := newTestCodec(t)

	encrypted, err := codec.Encrypt("written before the envelope", "user-1")
	require.NoError(t, err)
	legacy := strings.TrimPrefix(encrypted, EnvelopePrefix)

	require.True(t, LooksEncrypted(legacy))
	plain, err := codec.Decrypt(legacy, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "written before the envelope", plain)
}

func TestLooksEncrypted(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "envelope", value: EnvelopePrefix + "anything", want: true},
		{name: "legacy base64", value: base64.StdEncoding.EncodeToString(make([]byte, 30)), want: true},
		{name: "short base64", value: base64.StdEncoding.EncodeToString([]byte("hello")), want: false},
		{name: "plain sentence", value: "Meditate for ten minutes before breakfast every day", want: false},
		{name: "bad length", value: strings.Repeat("A", 41), want: false},
		{name: "url alphabet", value: strings.Repeat("-_", 20), want: false},
		{name: "too much padding", value: strings.Repeat("A", 37) + "===", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksEncrypted(tt.value))
		})
	}
}

func TestEncryptFields_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	rec := models.Record{"title": "Run 5k", "category": "health", "points": float64(3)}

	encrypted := codec.EncryptFields(ctx, rec, models.EncryptedFields.Todo, "user-1")
	assert.NotEqual(t, "Run 5k", encrypted["title"])
	assert.NotEqual(t, "health", encrypted["category"])
	assert.Equal(t, float64(3), encrypted["points"])

	decrypted := codec.DecryptFields(ctx, encrypted, models.EncryptedFields.Todo, "user-1")
	assert.Equal(t, rec, decrypted)
}

func TestEncryptFields_DoesNotMutateInput(t *testing.T) {
	codec := newTestCodec(t)
	rec := models.Record{"title": "Run 5k"}

	out := codec.EncryptFields(context.Background(), rec, models.FieldSet{"title"}, "user-1")

	assert.Equal(t, "Run 5k", rec["title"])
	assert.NotEqual(t, rec["title"], out["title"])
}

func TestEncryptFields_PassThrough(t *testing.T) {
	codec := newTestCodec(t)
	rec := models.Record{"a": float64(1), "b": "x", "c": nil, "d": ""}

	out := codec.EncryptFields(context.Background(), rec, models.FieldSet{"a", "c", "d", "missing"}, "user-1")

	assert.Equal(t, rec, out)
	assert.NotContains(t, out, "missing")
}

func TestEncryptFields_EnvelopePrefixedPlaintextIsEncrypted(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	plain := models.Record{"title": "enc:v1: my private diary thought"}

	stored := codec.EncryptFields(ctx, plain, models.FieldSet{"title"}, "user-1")

	title := stored["title"].(string)
	assert.NotEqual(t, plain["title"], title)
	assert.NotContains(t, title, "my private diary thought")
	assert.True(t, IsEnveloped(title))
	assert.Equal(t, plain, codec.DecryptFields(ctx, stored, models.FieldSet{"title"}, "user-1"))
}

func TestEncryptContent_EnvelopePrefixedPlaintextIsEncrypted(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	blocks := []any{map[string]any{"id": "b1", "content": "enc:v1:not really ciphertext"}}

	stored := codec.EncryptContent(ctx, blocks, "user-1")

	content := stored[0].(map[string]any)["content"].(string)
	assert.NotEqual(t, "enc:v1:not really ciphertext", content)
	assert.Equal(t, blocks, codec.DecryptContent(ctx, stored, "user-1"))
}

func TestEncryptFields_EmptyUserKeepsOriginal(t *testing.T) {
	codec := newTestCodec(t)
	rec := models.Record{"title": "Run 5k"}

	out := codec.EncryptFields(context.Background(), rec, models.FieldSet{"title"}, "")

	assert.Equal(t, rec, out)
}

func TestEncryptFields_NilRecord(t *testing.T) {
	codec := newTestCodec(t)

	assert.Nil(t, codec.EncryptFields(context.Background(), nil, models.FieldSet{"title"}, "user-1"))
	assert.Nil(t, codec.DecryptFields(context.Background(), nil, models.FieldSet{"title"}, "user-1"))
}

func TestDecryptFields_CrossUserReturnsCiphertext(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	encrypted := codec.EncryptFields(ctx, models.Record{"goal": "learn go"}, models.EncryptedFields.UserData, "A")
	decrypted := codec.DecryptFields(ctx, encrypted, models.EncryptedFields.UserData, "B")

	assert.Equal(t, encrypted["goal"], decrypted["goal"])
	assert.NotEqual(t, "learn go", decrypted["goal"])
}

func TestDecryptFields_LegacyPlainTextUntouched(t *testing.T) {
	codec := newTestCodec(t)
	rec := models.Record{"title": "plain legacy title", "description": "QUJDREVGR0hJSktMTU5PUFFSU1RVVldYWVphYmNkZWZn"}

	out := codec.DecryptFields(context.Background(), rec, models.EncryptedFields.Planner, "user-1")

	assert.Equal(t, rec, out)
}

func TestEncryptArray_PreservesOrderAndLength(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	recs := []models.Record{
		{"title": "first"},
		nil,
		{"title": "third", "category": float64(7)},
	}

	encrypted := codec.EncryptArray(ctx, recs, models.EncryptedFields.Todo, "user-1")
	require.Len(t, encrypted, 3)
	assert.Nil(t, encrypted[1])
	assert.Equal(t, float64(7), encrypted[2]["category"])

	decrypted := codec.DecryptArray(ctx, encrypted, models.EncryptedFields.Todo, "user-1")
	assert.Equal(t, recs, decrypted)
}

func TestEncryptArray_Nil(t *testing.T) {
	codec := newTestCodec(t)

	assert.Nil(t, codec.EncryptArray(context.Background(), nil, models.EncryptedFields.Todo, "user-1"))
	assert.Nil(t, codec.DecryptArray(context.Background(), nil, models.EncryptedFields.Todo, "user-1"))
}

func TestEncryptContent_RoundTripNested(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	blocks := []any{
		map[string]any{
			"id":      "b1",
			"type":    "paragraph",
			"content": "top level text",
		},
		map[string]any{
			"id":   "b2",
			"type": "checklist",
			"listItems": []any{
				map[string]any{
					"id":      "i1",
					"content": "item one",
					"checked": true,
					"subItems": []any{
						map[string]any{"id": "s1", "content": "sub item", "checked": false},
					},
				},
			},
		},
		"not an object",
	}

	encrypted := codec.EncryptContent(ctx, blocks, "user-1")

	first := encrypted[0].(map[string]any)
	assert.True(t, IsEnveloped(first["content"].(string)))
	item := encrypted[1].(map[string]any)["listItems"].([]any)[0].(map[string]any)
	assert.True(t, IsEnveloped(item["content"].(string)))
	assert.Equal(t, true, item["checked"])
	sub := item["subItems"].([]any)[0].(map[string]any)
	assert.True(t, IsEnveloped(sub["content"].(string)))
	assert.Equal(t, "not an object", encrypted[2])

	// input untouched
	assert.Equal(t, "top level text", blocks[0].(map[string]any)["content"])

	assert.Equal(t, blocks, codec.DecryptContent(ctx, encrypted, "user-1"))
}

func TestDecryptContent_PlainLeavesUntouched(t *testing.T) {
	codec := newTestCodec(t)
	blocks := []any{map[string]any{"content": "never encrypted"}}

	assert.Equal(t, blocks, codec.DecryptContent(context.Background(), blocks, "user-1"))
	assert.Nil(t, codec.DecryptContent(context.Background(), nil, "user-1"))
}

func TestDeriveUserKey(t *testing.T) {
	master := []byte("master")

	k1, err := DeriveUserKey(master, "alice")
	require.NoError(t, err)
	k2, err := DeriveUserKey(master, "alice")
	require.NoError(t, err)
	k3, err := DeriveUserKey(master, "bob")
	require.NoError(t, err)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)

	_, err = DeriveUserKey(nil, "alice")
	assert.ErrorIs(t, err, ErrMissingMasterKey)
	_, err = DeriveUserKey(master, "")
	assert.ErrorIs(t, err, ErrEmptyUserID)
}
