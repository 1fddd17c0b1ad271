// Package hashing derives and verifies salted PBKDF2-HMAC-SHA512 password
// hashes stored as self-describing text records.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface, implemented by
// [PBKDF2Hasher]. Callers depend on the interface and hand it a [Password];
// the hasher returns a record string that the caller stores (for example in a
// single database column). The package never persists or logs anything.
//
// # Quick start
//
//	h, err := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
//	if err != nil { log.Fatal(err) }
//
//	record, _ := h.Make("my-secret-password")
//	ok, _     := h.Check("my-secret-password", record) // true
//
// # Record format
//
//	sha512:<iterations>:<hash_len>:<base64-salt>:<base64-hash>
//
// All parameters are carried by the record, so [PBKDF2Hasher.Check] verifies
// records created under any earlier configuration. Use
// [PBKDF2Hasher.NeedsRehash] after a successful login to upgrade old records:
//
//	ok, err := h.Check(password, stored)
//	if ok {
//	    if needs, _ := h.NeedsRehash(stored); needs {
//	        upgraded, _ := h.Make(password)
//	        persist(userID, upgraded)
//	    }
//	}
//
// # Errors
//
// A wrong password is (false, nil). A corrupted or tampered record yields an
// error matching [ErrInvalidHash] plus one specific kind, so callers can
// alert on it separately from routine mismatches. [ErrDerivation] and
// [ErrRandomSource] indicate a broken environment.
//
// # Security defaults
//
//   - 18-byte derived hash, 24-byte salt, 64000 iterations.
//   - Salts come from crypto/rand unless [PBKDF2Options].Rand is set.
//   - Comparison does not stop at the first differing byte.
package hashing
