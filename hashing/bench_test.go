package hashing_test

import (
	"testing"

	"github.com/hasbyte1/go-password-hasher/hashing"
)

// ──────────────────────────────────────────────────────────────────────────────
// PBKDF2 benchmarks
// ──────────────────────────────────────────────────────────────────────────────
//
// Note: PBKDF2 is intentionally slow. The Default benchmarks show the real-world
// cost; the Fast ones measure codec and framework overhead only.

func BenchmarkPBKDF2_Default_Make(b *testing.B) {
	h, _ := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Make("bench-password")
	}
}

func BenchmarkPBKDF2_Default_Check(b *testing.B) {
	h, _ := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
	record, _ := h.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check("bench-password", record)
	}
}

func BenchmarkPBKDF2_Fast_Make(b *testing.B) {
	h := newTestHasher(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Make("bench-password")
	}
}

func BenchmarkPBKDF2_Fast_Check(b *testing.B) {
	h := newTestHasher(b)
	record, _ := h.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check("bench-password", record)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Record codec benchmarks
// ──────────────────────────────────────────────────────────────────────────────

func BenchmarkParseRecord(b *testing.B) {
	h := newTestHasher(b)
	record, _ := h.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hashing.ParseRecord(record)
	}
}

func BenchmarkCheck_MalformedRecord(b *testing.B) {
	h, _ := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check("bench-password", "sha512:64000:18:AAAA:!!!!")
	}
}
