// Package observe wraps a [hashing.Hasher] with structured logging and
// Prometheus metrics.
//
// Passwords are never logged. Rejected records are logged by error kind only,
// so an operator can alert on corrupted or tampered records without the
// record itself ending up in the logs.
package observe

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/hasbyte1/go-password-hasher/hashing"
)

var _ hashing.Hasher = (*Hasher)(nil)

// Hasher decorates another [hashing.Hasher]. It is safe for concurrent use
// when the wrapped hasher is.
type Hasher struct {
	next    hashing.Hasher
	log     *zap.Logger
	metrics *Metrics
}

// New wraps next. A nil log discards log output; a nil metrics disables
// metrics.
func New(next hashing.Hasher, log *zap.Logger, metrics *Metrics) *Hasher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hasher{
		next:    next,
		log:     log.With(zap.Stringer("algorithm", next.Algorithm())),
		metrics: metrics,
	}
}

// Algorithm returns the wrapped hasher's algorithm.
func (h *Hasher) Algorithm() hashing.Algorithm { return h.next.Algorithm() }

// Make hashes password with the wrapped hasher and records the outcome and
// duration. Failures are logged at error level.
func (h *Hasher) Make(password hashing.Password) (string, error) {
	start := time.Now()
	record, err := h.next.Make(password)
	elapsed := time.Since(start)

	if err != nil {
		h.metrics.observe(opMake, resultError, elapsed.Seconds())
		h.log.Error("failed to hash password", zap.Error(err))
		return "", err
	}
	h.metrics.observe(opMake, resultOK, elapsed.Seconds())
	h.log.Debug("hashed password", zap.Duration("elapsed", elapsed))
	return record, nil
}

// Check verifies password against record with the wrapped hasher. Rejected
// records are logged at warn level with their error kind; matches and
// mismatches only at debug level.
func (h *Hasher) Check(password hashing.Password, record string) (bool, error) {
	start := time.Now()
	ok, err := h.next.Check(password, record)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, hashing.ErrInvalidHash):
		h.metrics.observe(opCheck, resultInvalidRecord, elapsed.Seconds())
		h.log.Warn("rejected stored hash record",
			zap.String("kind", Kind(err)),
		)
	case err != nil:
		h.metrics.observe(opCheck, resultError, elapsed.Seconds())
		h.log.Error("failed to verify password",
			zap.String("kind", Kind(err)),
			zap.Error(err),
		)
	case ok:
		h.metrics.observe(opCheck, resultMatch, elapsed.Seconds())
		h.log.Debug("password verified", zap.Duration("elapsed", elapsed))
	default:
		h.metrics.observe(opCheck, resultMismatch, elapsed.Seconds())
		h.log.Debug("password mismatch", zap.Duration("elapsed", elapsed))
	}
	return ok, err
}

// NeedsRehash delegates to the wrapped hasher and logs records it cannot
// parse.
func (h *Hasher) NeedsRehash(record string) (bool, error) {
	needs, err := h.next.NeedsRehash(record)
	if err != nil {
		h.log.Warn("cannot inspect stored hash record", zap.String("kind", Kind(err)))
	}
	return needs, err
}

// Info delegates to the wrapped hasher.
func (h *Hasher) Info(record string) (hashing.HashInfo, error) {
	return h.next.Info(record)
}

// kinds lists the specific error kinds in the order they are tested.
var kinds = []struct {
	err  error
	name string
}{
	{hashing.ErrMalformedHash, "malformed"},
	{hashing.ErrUnsupportedAlgorithm, "unsupported_algorithm"},
	{hashing.ErrInvalidIterationCount, "invalid_iteration_count"},
	{hashing.ErrBase64Decode, "base64_decode"},
	{hashing.ErrInvalidHashSize, "invalid_hash_size"},
	{hashing.ErrHashSizeMismatch, "hash_size_mismatch"},
	{hashing.ErrDerivation, "derivation"},
	{hashing.ErrEmptyPassword, "empty_password"},
	{hashing.ErrRandomSource, "random_source"},
	{hashing.ErrConfiguration, "configuration"},
}

// Kind returns a stable, log-friendly name for the hashing error kind of err,
// "" for nil and "unknown" for errors outside the hashing taxonomy.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}
