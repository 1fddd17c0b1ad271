package hashing

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	recordSeparator = ":"
	recordFields    = 5

	algorithmIndex  = 0
	iterationIndex  = 1
	hashSizeIndex   = 2
	saltIndex       = 3
	derivedKeyIndex = 4
)

// Record is the decoded form of a hash record:
//
//	sha512:64000:18:<base64-salt>:<base64-hash>
//
// All parameters needed for verification travel inside the record, so a
// record keeps verifying after the hasher's options change.
type Record struct {
	Algorithm  Algorithm
	Iterations int
	// HashLen is the declared size of Hash in bytes.
	HashLen int
	Salt    []byte
	Hash    []byte
}

// String encodes r using standard padded base64 for the binary fields.
func (r Record) String() string {
	return strings.Join([]string{
		r.Algorithm.String(),
		strconv.Itoa(r.Iterations),
		strconv.Itoa(r.HashLen),
		base64.StdEncoding.EncodeToString(r.Salt),
		base64.StdEncoding.EncodeToString(r.Hash),
	}, recordSeparator)
}

// ParseRecord decodes and validates an encoded hash record.
//
// The checks run in a fixed order and all of them complete before any key
// derivation happens, so a malformed record fails without paying the
// iteration cost. Every returned error matches [ErrInvalidHash] and one
// specific kind ([ErrMalformedHash], [ErrUnsupportedAlgorithm],
// [ErrInvalidIterationCount], [ErrBase64Decode], [ErrInvalidHashSize] or
// [ErrHashSizeMismatch]).
func ParseRecord(encoded string) (*Record, error) {
	parts := strings.Split(encoded, recordSeparator)
	if len(parts) != recordFields {
		return nil, invalidHash(ErrMalformedHash, "expected %d fields, got %d", recordFields, len(parts))
	}

	alg, ok := ParseAlgorithm(parts[algorithmIndex])
	if !ok {
		return nil, invalidHash(ErrUnsupportedAlgorithm, "%q", parts[algorithmIndex])
	}

	iterations, err := strconv.ParseInt(parts[iterationIndex], 10, 32)
	if err != nil {
		return nil, invalidHash(ErrInvalidIterationCount, "%v", err)
	}
	if iterations < 1 {
		return nil, invalidHash(ErrInvalidIterationCount, "must be >= 1, got %d", iterations)
	}

	salt, err := decodeBase64(parts[saltIndex])
	if err != nil {
		return nil, invalidHash(ErrBase64Decode, "salt: %v", err)
	}
	if len(salt) == 0 {
		return nil, invalidHash(ErrMalformedHash, "empty salt")
	}

	hash, err := decodeBase64(parts[derivedKeyIndex])
	if err != nil {
		return nil, invalidHash(ErrBase64Decode, "hash: %v", err)
	}

	hashLen, err := strconv.ParseInt(parts[hashSizeIndex], 10, 32)
	if err != nil {
		return nil, invalidHash(ErrInvalidHashSize, "%v", err)
	}
	if hashLen < 1 {
		return nil, invalidHash(ErrInvalidHashSize, "must be >= 1, got %d", hashLen)
	}
	if int(hashLen) != len(hash) {
		return nil, invalidHash(ErrHashSizeMismatch, "declared %d bytes, decoded %d", hashLen, len(hash))
	}

	return &Record{
		Algorithm:  alg,
		Iterations: int(iterations),
		HashLen:    int(hashLen),
		Salt:       salt,
		Hash:       hash,
	}, nil
}

// decodeBase64 decodes standard base64. Fields written without padding are
// accepted as long as they carry no '=' at all. Line breaks are rejected;
// encoding/base64 would otherwise skip them.
func decodeBase64(s string) ([]byte, error) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err == nil {
		return b, nil
	}
	if strings.Contains(s, "=") {
		return nil, err
	}
	if raw, rawErr := base64.RawStdEncoding.Strict().DecodeString(s); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

func invalidHash(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidHash, kind, fmt.Sprintf(format, args...))
}
