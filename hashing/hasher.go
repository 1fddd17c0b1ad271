package hashing

import (
	"log/slog"
	"strings"
)

// Algorithm identifies a key-derivation algorithm that can appear in a hash
// record. The set is closed: records naming anything else are rejected with
// [ErrUnsupportedAlgorithm].
type Algorithm uint8

const (
	// AlgorithmSHA512 is PBKDF2 keyed with HMAC-SHA512. Its record
	// identifier is "sha512".
	AlgorithmSHA512 Algorithm = iota + 1
)

// algorithmIDs maps each Algorithm to the identifier written into records.
var algorithmIDs = map[Algorithm]string{
	AlgorithmSHA512: "sha512",
}

// String returns the record identifier of a, or "unknown".
func (a Algorithm) String() string {
	if id, ok := algorithmIDs[a]; ok {
		return id
	}
	return "unknown"
}

// ParseAlgorithm maps a record identifier back to its Algorithm.
// The second return value is false for unknown identifiers.
func ParseAlgorithm(id string) (Algorithm, bool) {
	for a, s := range algorithmIDs {
		if s == id {
			return a, true
		}
	}
	return 0, false
}

// redacted is what a Password renders as in any textual output.
const redacted = "[REDACTED]"

// Password is a plaintext secret handed to a [Hasher].
//
// It is a plain string underneath, so untyped string constants can be passed
// directly, but it never renders its content through fmt, log/slog or
// encoding/json. Convert explicitly (string(p)) only where the raw bytes are
// really needed.
type Password string

// String implements fmt.Stringer.
func (p Password) String() string { return redacted }

// GoString implements fmt.GoStringer so %#v is redacted too.
func (p Password) GoString() string { return redacted }

// LogValue implements slog.LogValuer.
func (p Password) LogValue() slog.Value { return slog.StringValue(redacted) }

// MarshalText implements encoding.TextMarshaler.
func (p Password) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Hasher is the core interface satisfied by password-hashing implementations.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash record.
	// A fresh salt is drawn for every call, so two calls with the same
	// password produce different records.
	Make(password Password) (string, error)

	// Check verifies that password matches the previously encoded record.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the record is structurally invalid or the derivation
	// could not run.
	Check(password Password, record string) (bool, error)

	// NeedsRehash returns true when the record was produced with parameters
	// different from the hasher's current configuration. Callers should
	// re-hash the password on the next successful login when this is true.
	NeedsRehash(record string) (bool, error)

	// Info extracts metadata from a record without verifying it.
	Info(record string) (HashInfo, error)

	// Algorithm returns the Algorithm implemented by this hasher.
	Algorithm() Algorithm
}

// HashInfo carries metadata parsed from an encoded hash record.
type HashInfo struct {
	// Algorithm is the key-derivation algorithm that produced the record.
	Algorithm Algorithm

	// Params holds the parameters extracted from the record:
	//
	//   "iterations" → int
	//   "hash_len"   → int (bytes)
	//   "salt_len"   → int (bytes)
	Params map[string]any
}

// DetectAlgorithm inspects a record and returns the [Algorithm] that produced
// it. It only looks at the identifier prefix and does not validate the rest.
//
// The second return value is false when the prefix is not recognised.
func DetectAlgorithm(record string) (Algorithm, bool) {
	id, _, found := strings.Cut(record, recordSeparator)
	if !found {
		return 0, false
	}
	return ParseAlgorithm(id)
}
