package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// It is used to derive stable 64-bit identifiers for algorithm names in blob
// headers, so a run can be matched to its algorithm without storing the name.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
