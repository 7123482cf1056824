package consts

import (
	"math/bits"
	"testing"

	"github.com/zeebo/assert"
)

func TestRoundConstants(t *testing.T) {
	for j := range T {
		base := uint32(0x7A879D8A)
		if j < 16 {
			base = 0x79CC4519
		}
		assert.Equal(t, T[j], bits.RotateLeft32(base, j%32))
	}
}
