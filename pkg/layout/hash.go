// Package layout assigns each scheme a canvas box. Vertical position comes
// from the compressed year axis; horizontal position is deterministic
// pseudo-random: a documented string hash perturbs a rotating column
// assignment, so placement looks organic yet is bit-identical across runs.
package layout

// Hash mixing constants. The rolling hash uses the classic base-31
// polynomial; the two extra multiplicative rounds are Murmur-style
// finalization constants that spread low-entropy inputs across the word.
const (
	hashBase = 31
	hashMix1 = 0x85ebca6b
	hashMix2 = 0xc2b2ae35
)

// stringHash is a polynomial rolling hash with two multiplicative mixing
// rounds. It is implemented explicitly (rather than via the runtime's map
// hash) so the bit pattern is stable across runs, platforms, and ports.
func stringHash(s string) uint32 {
	var h uint32
	for _, b := range []byte(s) {
		h = h*hashBase + uint32(b)
	}
	h ^= h >> 16
	h *= hashMix1
	h ^= h >> 13
	h *= hashMix2
	h ^= h >> 16
	return h
}

// jitter maps a hash to a symmetric offset in [-bound, bound].
func jitter(h uint32, bound float64) float64 {
	// 2^32-1 as float; the ratio lands in [0,1].
	unit := float64(h) / 4294967295.0
	return (unit*2 - 1) * bound
}
