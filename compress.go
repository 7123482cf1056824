package sm3

import (
	"math/bits"

	"github.com/zeebo/sm3/internal/consts"
	"github.com/zeebo/sm3/internal/utils"
)

func p0(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17) }
func p1(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23) }

func expand(m *[16]uint32, w *[68]uint32, wp *[64]uint32) {
	copy(w[:16], m[:])
	for i := 16; i < 68; i++ {
		t := w[i-16] ^ w[i-9] ^ bits.RotateLeft32(w[i-3], 15)
		w[i] = p1(t) ^ bits.RotateLeft32(w[i-13], 7) ^ w[i-6]
	}
	for i := 0; i < 64; i++ {
		wp[i] = w[i] ^ w[i+4]
	}
}

// compressBytes loads the block big-endian and compresses it into chain.
func compressBytes(chain *[8]uint32, block *[consts.BlockLen]byte) {
	var m [16]uint32
	utils.BytesToWords(block, &m)
	compress(chain, &m)
}

func compress(chain *[8]uint32, m *[16]uint32) {
	var w [68]uint32
	var wp [64]uint32
	expand(m, &w, &wp)

	a, b, c, d := chain[0], chain[1], chain[2], chain[3]
	e, f, g, h := chain[4], chain[5], chain[6], chain[7]

	for j := 0; j < 16; j++ {
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+consts.T[j], 7)
		ss2 := ss1 ^ a12
		tt1 := (a ^ b ^ c) + d + ss2 + wp[j]
		tt2 := (e ^ f ^ g) + h + ss1 + w[j]

		d, c, b, a = c, bits.RotateLeft32(b, 9), a, tt1
		h, g, f, e = g, bits.RotateLeft32(f, 19), e, p0(tt2)
	}

	for j := 16; j < 64; j++ {
		a12 := bits.RotateLeft32(a, 12)
		ss1 := bits.RotateLeft32(a12+e+consts.T[j], 7)
		ss2 := ss1 ^ a12
		tt1 := ((a & b) | (a & c) | (b & c)) + d + ss2 + wp[j]
		tt2 := ((e & f) | (^e & g)) + h + ss1 + w[j]

		d, c, b, a = c, bits.RotateLeft32(b, 9), a, tt1
		h, g, f, e = g, bits.RotateLeft32(f, 19), e, p0(tt2)
	}

	chain[0] ^= a
	chain[1] ^= b
	chain[2] ^= c
	chain[3] ^= d
	chain[4] ^= e
	chain[5] ^= f
	chain[6] ^= g
	chain[7] ^= h
}
