package hashing_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/hasbyte1/go-password-hasher/hashing"
)

func TestRecord_String(t *testing.T) {
	r := hashing.Record{
		Algorithm:  hashing.AlgorithmSHA512,
		Iterations: 64000,
		HashLen:    3,
		Salt:       []byte("salt"),
		Hash:       []byte{0xff, 0x00, 0x7f},
	}
	const want = "sha512:64000:3:c2FsdA==:/wB/"
	if got := r.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestParseRecord_RoundTrip(t *testing.T) {
	const encoded = "sha512:1:18:AAECAwQFBgcICQoLDA0ODxAREhMUFRYX:H/kNeRlqajaqsSHbd7vyD55G"
	r, err := hashing.ParseRecord(encoded)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if r.Algorithm != hashing.AlgorithmSHA512 {
		t.Errorf("Algorithm = %v", r.Algorithm)
	}
	if r.Iterations != 1 {
		t.Errorf("Iterations = %d, want 1", r.Iterations)
	}
	if r.HashLen != 18 || len(r.Hash) != 18 {
		t.Errorf("HashLen = %d, len(Hash) = %d, want 18", r.HashLen, len(r.Hash))
	}
	if !bytes.Equal(r.Salt, fixedSalt()) {
		t.Errorf("Salt = %x, want %x", r.Salt, fixedSalt())
	}
	if got := r.String(); got != encoded {
		t.Errorf("re-encoded = %q, want %q", got, encoded)
	}
}

func TestParseRecord_UnpaddedBase64(t *testing.T) {
	salt := fixedSalt()[:17]
	encoded := "sha512:1:18:" + base64.RawStdEncoding.EncodeToString(salt) + ":H/kNeRlqajaqsSHbd7vyD55G"
	r, err := hashing.ParseRecord(encoded)
	if err != nil {
		t.Fatalf("unpadded salt must be accepted, got %v", err)
	}
	if !bytes.Equal(r.Salt, salt) {
		t.Errorf("Salt = %x, want %x", r.Salt, salt)
	}
}

func TestParseRecord_ErrorsCarryKindAndUmbrella(t *testing.T) {
	_, err := hashing.ParseRecord("sha512:1:3:AA==:AAA=")
	if !errors.Is(err, hashing.ErrHashSizeMismatch) {
		t.Errorf("expected ErrHashSizeMismatch, got %v", err)
	}
	if !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
	if errors.Is(err, hashing.ErrMalformedHash) {
		t.Error("size mismatch must not match ErrMalformedHash")
	}
}

func TestParseRecord_ValidationOrder(t *testing.T) {
	// Every field is broken; the field count wins, then the algorithm, and so on.
	tests := []struct {
		record string
		want   error
	}{
		{"md5:x:y:!:!:extra", hashing.ErrMalformedHash},
		{"md5:x:y:!:!", hashing.ErrUnsupportedAlgorithm},
		{"sha512:x:y:!:!", hashing.ErrInvalidIterationCount},
		{"sha512:1:y:!:!", hashing.ErrBase64Decode},
		{"sha512:1:y:AA==:!", hashing.ErrBase64Decode},
		{"sha512:1:y:AA==:AA==", hashing.ErrInvalidHashSize},
		{"sha512:1:2:AA==:AA==", hashing.ErrHashSizeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.record, func(t *testing.T) {
			_, err := hashing.ParseRecord(tt.record)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDetectAlgorithm(t *testing.T) {
	tests := []struct {
		record string
		want   hashing.Algorithm
		ok     bool
	}{
		{"sha512:64000:18:AA==:AA==", hashing.AlgorithmSHA512, true},
		{"sha512:", hashing.AlgorithmSHA512, true},
		{"sha512", 0, false},
		{"$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.record, func(t *testing.T) {
			got, ok := hashing.DetectAlgorithm(tt.record)
			if got != tt.want || ok != tt.ok {
				t.Errorf("DetectAlgorithm(%q) = (%v, %v), want (%v, %v)", tt.record, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAlgorithm_String(t *testing.T) {
	if got := hashing.AlgorithmSHA512.String(); got != "sha512" {
		t.Errorf("String = %q, want sha512", got)
	}
	if got := hashing.Algorithm(0).String(); got != "unknown" {
		t.Errorf("zero Algorithm String = %q, want unknown", got)
	}
}

func TestParseAlgorithm(t *testing.T) {
	if a, ok := hashing.ParseAlgorithm("sha512"); !ok || a != hashing.AlgorithmSHA512 {
		t.Errorf("ParseAlgorithm(sha512) = (%v, %v)", a, ok)
	}
	for _, id := range []string{"", "SHA512", "sha256", "unknown"} {
		if _, ok := hashing.ParseAlgorithm(id); ok {
			t.Errorf("ParseAlgorithm(%q) should fail", id)
		}
	}
}
