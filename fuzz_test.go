package sm3

import (
	"math/rand"
	"testing"
)

func FuzzHash(f *testing.F) {
	f.Add([]byte{1, 63, 64, 65})
	f.Add([]byte{55, 1, 0, 200})

	f.Fuzz(func(t *testing.T, prog []byte) {
		l := 0
		for _, v := range prog {
			l += int(v)
		}
		data := make([]byte, l)
		rand.New(rand.NewSource(0)).Read(data)

		h, b := New(), data
		for _, v := range prog {
			h.Write(b[:v])
			b = b[v:]
		}
		v1 := h.Sum(nil)
		v2 := Sum256(data)
		if string(v1) != string(v2[:]) {
			t.Fatalf("v1: %x, v2: %x", v1, v2)
		}
		if v3 := refSum(data); v2 != v3 {
			t.Fatalf("v2: %x, ref: %x", v2, v3)
		}
	})
}
