// Package validate runs statistical sanity checks against the sm3 package:
// digest collisions over random inputs and the avalanche response to single
// bit flips. It only uses the public API.
package validate

import (
	"math"
	"math/bits"

	"github.com/zeebo/pcg"

	"github.com/zeebo/sm3"
)

// Config controls a validation run.
type Config struct {
	Samples int    // number of random messages
	MaxLen  int    // messages have a length uniform in [0, MaxLen]
	Seed    uint64 // seed for the message generator
	Preview int    // how many samples to keep for display
}

// Sample is one message and its digest kept for display.
type Sample struct {
	Input  []byte
	Digest [sm3.Size]byte
	Bits   int // output bits changed; avalanche only
}

// maxLen bounds MaxLen so the length draw stays within uint32.
const maxLen = math.MaxInt32

// normalize clamps fields that would otherwise panic or overflow.
func (c Config) normalize() Config {
	if c.Samples < 0 {
		c.Samples = 0
	}
	if c.MaxLen < 0 {
		c.MaxLen = 0
	} else if c.MaxLen > maxLen {
		c.MaxLen = maxLen
	}
	if c.Preview < 0 {
		c.Preview = 0
	}
	return c
}

type generator struct {
	rng pcg.T
	max int
}

func newGenerator(cfg Config) *generator {
	cfg = cfg.normalize()
	return &generator{rng: pcg.New(cfg.Seed), max: cfg.MaxLen}
}

func (g *generator) message() []byte {
	n := int(g.rng.Uint32n(uint32(g.max) + 1))
	msg := make([]byte, n)
	for i := 0; i < n; i += 4 {
		v := g.rng.Uint32()
		for j := i; j < i+4 && j < n; j++ {
			msg[j] = byte(v)
			v >>= 8
		}
	}
	return msg
}

// flip returns a copy of msg with one randomly chosen bit inverted. Bit
// positions count from the most significant bit of the first byte.
func (g *generator) flip(msg []byte) []byte {
	pos := g.rng.Uint32n(uint32(len(msg) * 8))
	out := append([]byte(nil), msg...)
	out[pos/8] ^= 1 << (7 - pos%8)
	return out
}

// CollisionReport summarizes a collision run.
type CollisionReport struct {
	Samples    int
	Collisions int // digest repeated for a different input
	SameInputs int // digest repeated because the input repeated
	Rate       float64
	Preview    []Sample
}

// Collisions hashes cfg.Samples random messages and counts repeated digests.
func Collisions(cfg Config) CollisionReport {
	cfg = cfg.normalize()
	g := newGenerator(cfg)
	seen := make(map[[sm3.Size]byte]string, cfg.Samples)
	rep := CollisionReport{Samples: cfg.Samples}

	for i := 0; i < cfg.Samples; i++ {
		msg := g.message()
		sum := sm3.Sum256(msg)

		if prev, ok := seen[sum]; !ok {
			seen[sum] = string(msg)
		} else if prev != string(msg) {
			rep.Collisions++
		} else {
			rep.SameInputs++
		}

		if len(rep.Preview) < cfg.Preview {
			rep.Preview = append(rep.Preview, Sample{Input: msg, Digest: sum})
		}
	}

	if cfg.Samples > 0 {
		rep.Rate = float64(rep.Collisions) / float64(cfg.Samples)
	}
	return rep
}

// AvalancheReport summarizes an avalanche run. Bit counts are out of
// 8*sm3.Size.
type AvalancheReport struct {
	Samples   int
	Used      int
	Skipped   int // empty messages have no bit to flip
	MeanBits  float64
	StdevBits float64 // population standard deviation
	MeanRate  float64
	MinBits   int
	MaxBits   int
	Preview   []Sample
}

// Good reports whether the mean fraction of flipped output bits is within
// five points of one half.
func (r AvalancheReport) Good() bool {
	return r.Used > 0 && r.MeanRate >= 0.45 && r.MeanRate <= 0.55
}

// Avalanche flips one random input bit of each of cfg.Samples random
// messages and measures how many digest bits change.
func Avalanche(cfg Config) AvalancheReport {
	cfg = cfg.normalize()
	g := newGenerator(cfg)
	rep := AvalancheReport{Samples: cfg.Samples}
	diffs := make([]int, 0, cfg.Samples)

	for i := 0; i < cfg.Samples; i++ {
		msg := g.message()
		if len(msg) == 0 {
			rep.Skipped++
			continue
		}

		h1 := sm3.Sum256(msg)
		h2 := sm3.Sum256(g.flip(msg))
		n := hamming(&h1, &h2)
		diffs = append(diffs, n)

		if len(rep.Preview) < cfg.Preview {
			rep.Preview = append(rep.Preview, Sample{Input: msg, Digest: h1, Bits: n})
		}
	}

	rep.Used = len(diffs)
	if rep.Used == 0 {
		return rep
	}

	rep.MinBits, rep.MaxBits = diffs[0], diffs[0]
	var sum float64
	for _, d := range diffs {
		sum += float64(d)
		if d < rep.MinBits {
			rep.MinBits = d
		}
		if d > rep.MaxBits {
			rep.MaxBits = d
		}
	}
	rep.MeanBits = sum / float64(rep.Used)
	rep.MeanRate = rep.MeanBits / (8 * sm3.Size)

	var sq float64
	for _, d := range diffs {
		dev := float64(d) - rep.MeanBits
		sq += dev * dev
	}
	rep.StdevBits = math.Sqrt(sq / float64(rep.Used))

	return rep
}

func hamming(a, b *[sm3.Size]byte) (n int) {
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n
}
