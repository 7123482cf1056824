// Package ref is a direct, unoptimized rendition of the SM3 compression
// function. It exists to check the production code against.
package ref

import "math/bits"

func rotl(x uint32, n int) uint32 { return bits.RotateLeft32(x, n%32) }

// P0 is the permutation applied to TT2 in each round.
func P0(x uint32) uint32 { return x ^ rotl(x, 9) ^ rotl(x, 17) }

// P1 is the permutation used by message expansion.
func P1(x uint32) uint32 { return x ^ rotl(x, 15) ^ rotl(x, 23) }

func ff(j int, a, b, c uint32) uint32 {
	if j <= 15 {
		return a ^ b ^ c
	}
	return (a & b) | (a & c) | (b & c)
}

func gg(j int, e, f, g uint32) uint32 {
	if j <= 15 {
		return e ^ f ^ g
	}
	return (e & f) | (^e & g)
}

// Expand derives W and W' from a block of sixteen words.
func Expand(block *[16]uint32) (w [68]uint32, wp [64]uint32) {
	copy(w[:16], block[:])
	for i := 16; i < 68; i++ {
		t := w[i-16] ^ w[i-9] ^ rotl(w[i-3], 15)
		w[i] = P1(t) ^ rotl(w[i-13], 7) ^ w[i-6]
	}
	for i := 0; i < 64; i++ {
		wp[i] = w[i] ^ w[i+4]
	}
	return w, wp
}

// Compress runs the 64 rounds over block starting from chain and writes
// the next chaining value into out.
func Compress(chain *[8]uint32, block *[16]uint32, out *[8]uint32) {
	w, wp := Expand(block)
	a, b, c, d, e, f, g, h := chain[0], chain[1], chain[2], chain[3],
		chain[4], chain[5], chain[6], chain[7]

	for j := 0; j < 64; j++ {
		tj := uint32(t0)
		if j > 15 {
			tj = t1
		}

		ss1 := rotl(rotl(a, 12)+e+rotl(tj, j), 7)
		ss2 := ss1 ^ rotl(a, 12)
		tt1 := ff(j, a, b, c) + d + ss2 + wp[j]
		tt2 := gg(j, e, f, g) + h + ss1 + w[j]

		d = c
		c = rotl(b, 9)
		b = a
		a = tt1
		h = g
		g = rotl(f, 19)
		f = e
		e = P0(tt2)
	}

	*out = [8]uint32{
		chain[0] ^ a, chain[1] ^ b, chain[2] ^ c, chain[3] ^ d,
		chain[4] ^ e, chain[5] ^ f, chain[6] ^ g, chain[7] ^ h,
	}
}
