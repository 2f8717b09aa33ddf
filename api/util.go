package api

import "bytes"

import "golang.org/x/exp/constraints"

// Ordered return a Compare function for types that support the
// ordering operators.
func Ordered[K constraints.Ordered]() Compare[K] {
	return func(a, b K) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	}
}

// Binarycmp compare byte-slice keys. If partial is true, key is
// only compared up to the length of limit.
func Binarycmp(key, limit []byte, partial bool) int {
	if ln := len(limit); partial && ln < len(key) {
		return bytes.Compare(key[:ln], limit[:ln])
	}
	return bytes.Compare(key, limit)
}

// Bytes Compare function for byte-slice keys.
func Bytes(a, b []byte) int {
	return Binarycmp(a, b, false)
}

// Reverse sort order of cmp.
func Reverse[K any](cmp Compare[K]) Compare[K] {
	return func(a, b K) int {
		return cmp(b, a)
	}
}
