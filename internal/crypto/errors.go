package crypto

import "errors"

var (
	// ErrMissingMasterKey is returned by [NewFieldCodec] when no master secret
	// is configured. It is a fatal startup condition.
	ErrMissingMasterKey = errors.New("field encryption master key is not configured")
	// ErrEmptyUserID is returned when a key is requested for an empty owner.
	ErrEmptyUserID = errors.New("user id is empty")
	// ErrNotEncrypted is returned by Decrypt for values that do not carry
	// the ciphertext envelope and do not look like legacy ciphertext.
	ErrNotEncrypted = errors.New("value is not encrypted")
	// ErrCiphertextTooShort is returned when the decoded blob cannot hold a
	// nonce and an authentication tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrDecryptionFailed wraps authentication failures: a wrong key or a
	// tampered value.
	ErrDecryptionFailed = errors.New("decryption failed")
)
