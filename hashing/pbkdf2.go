package hashing

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultHashLen is the default length of a derived hash in bytes.
	DefaultHashLen = 18

	// DefaultIterations is the default PBKDF2 work factor.
	DefaultIterations = 64000

	// DefaultSaltLen is the default random salt length in bytes.
	DefaultSaltLen = 24

	// maxKeyLen is the PBKDF2 output limit, (2^32 - 1) blocks of the PRF size.
	maxKeyLen int64 = (1<<32 - 1) * sha512.Size
)

// PBKDF2Options configures a [PBKDF2Hasher].
//
// HashLen, Iterations and SaltLen are encoded into every record (SaltLen
// implicitly, through the salt itself), so changing them only affects newly
// produced records; existing records keep verifying with their own values.
type PBKDF2Options struct {
	// HashLen is the number of bytes derived for new records.
	// Minimum: 1.  Default: [DefaultHashLen] (18).
	HashLen int

	// Iterations is the PBKDF2 iteration count for new records.
	// Minimum: 1.  Default: [DefaultIterations] (64000).
	Iterations int

	// SaltLen is the length of the random salt for new records.
	// Minimum: 1.  Default: [DefaultSaltLen] (24).
	SaltLen int

	// Rand is the source of salt bytes. nil selects crypto/rand.Reader.
	// A custom reader must be safe for concurrent use when the hasher is
	// shared between goroutines.
	Rand io.Reader
}

// DefaultPBKDF2Options returns PBKDF2Options with the default lengths and
// the system's cryptographically secure random source.
func DefaultPBKDF2Options() PBKDF2Options {
	return PBKDF2Options{
		HashLen:    DefaultHashLen,
		Iterations: DefaultIterations,
		SaltLen:    DefaultSaltLen,
	}
}

func validatePBKDF2Options(opts PBKDF2Options) error {
	if opts.HashLen < 1 {
		return fmt.Errorf("%w: hash length must be ≥ 1, got %d", ErrConfiguration, opts.HashLen)
	}
	if opts.Iterations < 1 {
		return fmt.Errorf("%w: iteration count must be ≥ 1, got %d", ErrConfiguration, opts.Iterations)
	}
	if opts.SaltLen < 1 {
		return fmt.Errorf("%w: salt length must be ≥ 1, got %d", ErrConfiguration, opts.SaltLen)
	}
	if int64(opts.HashLen) > maxKeyLen {
		return fmt.Errorf("%w: hash length %d exceeds the PBKDF2 limit", ErrConfiguration, opts.HashLen)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivation
// ──────────────────────────────────────────────────────────────────────────────

// prfs maps each Algorithm to the hash function keying its HMAC.
var prfs = map[Algorithm]func() hash.Hash{
	AlgorithmSHA512: sha512.New,
}

// derive runs PBKDF2 for alg and returns exactly keyLen bytes.
func derive(alg Algorithm, password, salt []byte, iterations, keyLen int) ([]byte, error) {
	prf, ok := prfs[alg]
	if !ok {
		return nil, fmt.Errorf("%w: no provider for algorithm %s", ErrDerivation, alg)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iteration count %d", ErrDerivation, iterations)
	}
	if keyLen < 1 || int64(keyLen) > maxKeyLen {
		return nil, fmt.Errorf("%w: key length %d", ErrDerivation, keyLen)
	}
	key := pbkdf2.Key(password, salt, iterations, keyLen, prf)
	if len(key) != keyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDerivation, len(key), keyLen)
	}
	return key, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// PBKDF2Hasher
// ──────────────────────────────────────────────────────────────────────────────

// PBKDF2Hasher hashes passwords with PBKDF2-HMAC-SHA512.
//
// Output format:
//
//	sha512:<iterations>:<hash_len>:<base64-salt>:<base64-hash>
//
// # Thread safety
//
// PBKDF2Hasher is immutable after construction and safe for concurrent use,
// provided the configured random source is.
type PBKDF2Hasher struct {
	opts PBKDF2Options
	rand io.Reader
}

// NewPBKDF2Hasher constructs a PBKDF2Hasher with the given options.
// Returns [ErrConfiguration] if any length or count is below 1.
// Use [DefaultPBKDF2Options] for the recommended defaults.
func NewPBKDF2Hasher(opts PBKDF2Options) (*PBKDF2Hasher, error) {
	if err := validatePBKDF2Options(opts); err != nil {
		return nil, err
	}
	r := opts.Rand
	if r == nil {
		r = rand.Reader
	}
	return &PBKDF2Hasher{opts: opts, rand: r}, nil
}

// Algorithm returns [AlgorithmSHA512].
func (h *PBKDF2Hasher) Algorithm() Algorithm { return AlgorithmSHA512 }

// Options returns the configured options.
func (h *PBKDF2Hasher) Options() PBKDF2Options { return h.opts }

// Make hashes password and returns an encoded record.
// A fresh salt of the configured length is read for each call.
func (h *PBKDF2Hasher) Make(password Password) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	salt := make([]byte, h.opts.SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	key, err := derive(AlgorithmSHA512, []byte(password), salt, h.opts.Iterations, h.opts.HashLen)
	if err != nil {
		return "", err
	}
	return Record{
		Algorithm:  AlgorithmSHA512,
		Iterations: h.opts.Iterations,
		HashLen:    len(key),
		Salt:       salt,
		Hash:       key,
	}.String(), nil
}

// Check verifies that password matches record.
//
// Salt, iteration count and hash length are read from the record itself, so
// verification is unaffected by the hasher's current options.
func (h *PBKDF2Hasher) Check(password Password, record string) (bool, error) {
	r, err := ParseRecord(record)
	if err != nil {
		return false, err
	}
	if password == "" {
		return false, ErrEmptyPassword
	}
	computed, err := derive(r.Algorithm, []byte(password), r.Salt, r.Iterations, len(r.Hash))
	if err != nil {
		return false, err
	}
	return slowEquals(r.Hash, computed), nil
}

// NeedsRehash returns true if the iteration count, hash length or salt
// length stored in record differs from the hasher's configuration.
func (h *PBKDF2Hasher) NeedsRehash(record string) (bool, error) {
	r, err := ParseRecord(record)
	if err != nil {
		return false, err
	}
	return r.Algorithm != AlgorithmSHA512 ||
		r.Iterations != h.opts.Iterations ||
		r.HashLen != h.opts.HashLen ||
		len(r.Salt) != h.opts.SaltLen, nil
}

// Info parses record and returns the encoded parameters.
//
// Returned [HashInfo].Params:
//   - "iterations" → int
//   - "hash_len"   → int
//   - "salt_len"   → int
func (h *PBKDF2Hasher) Info(record string) (HashInfo, error) {
	r, err := ParseRecord(record)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Algorithm: r.Algorithm,
		Params: map[string]any{
			"iterations": r.Iterations,
			"hash_len":   r.HashLen,
			"salt_len":   len(r.Salt),
		},
	}, nil
}
