package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Check(password, record)
//	switch {
//	case errors.Is(err, hashing.ErrInvalidHash):
//	    // stored record is corrupted or was tampered with
//	case err != nil:
//	    // environment problem (random source, derivation)
//	case !ok:
//	    // wrong password
//	}
//
// Every record-parsing error matches both [ErrInvalidHash] and exactly one of
// the more specific kinds below, so callers may match at either level.
var (
	// ErrInvalidHash is the umbrella for all structural problems in a stored
	// hash record.
	ErrInvalidHash = errors.New("hashing: invalid hash record")

	// ErrConfiguration is returned by [NewPBKDF2Hasher] when a length or
	// count option is below 1.
	ErrConfiguration = errors.New("hashing: invalid configuration")

	// ErrMalformedHash is returned when a record does not split into exactly
	// five colon-delimited fields, or a mandatory field is empty.
	ErrMalformedHash = errors.New("hashing: malformed hash record")

	// ErrUnsupportedAlgorithm is returned when the algorithm identifier of a
	// record is not one of the known [Algorithm] values.
	ErrUnsupportedAlgorithm = errors.New("hashing: unsupported algorithm")

	// ErrInvalidIterationCount is returned when the iteration field is not a
	// positive decimal integer.
	ErrInvalidIterationCount = errors.New("hashing: invalid iteration count")

	// ErrBase64Decode is returned when the salt or hash field is not valid
	// standard base64.
	ErrBase64Decode = errors.New("hashing: base64 decoding failed")

	// ErrInvalidHashSize is returned when the declared hash size field is not
	// a positive decimal integer.
	ErrInvalidHashSize = errors.New("hashing: invalid hash size")

	// ErrHashSizeMismatch is returned when the declared hash size disagrees
	// with the decoded length of the hash field.
	ErrHashSizeMismatch = errors.New("hashing: hash size mismatch")

	// ErrDerivation is returned when the key-derivation primitive is
	// unavailable or rejects its parameters. It indicates a deployment
	// defect and is never retried.
	ErrDerivation = errors.New("hashing: key derivation failed")

	// ErrEmptyPassword is returned by Make and Check for a zero-length password.
	ErrEmptyPassword = errors.New("hashing: password must not be empty")

	// ErrRandomSource is returned when the salt cannot be read from the
	// configured random source.
	ErrRandomSource = errors.New("hashing: random source failed")
)
