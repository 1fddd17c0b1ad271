package hashing

// slowEquals reports whether a and b hold the same bytes without returning
// early on the first differing byte.
//
// The length difference is folded into the accumulator up front and only the
// shorter length is walked, so timing is uniform for equal-length inputs but
// not across different length deltas. Verification always compares two
// slices of the record's declared length, which keeps that case off the hot
// path.
func slowEquals(a, b []byte) bool {
	diff := len(a) ^ len(b)
	for i := 0; i < len(a) && i < len(b); i++ {
		diff |= int(a[i] ^ b[i])
	}
	return diff == 0
}
