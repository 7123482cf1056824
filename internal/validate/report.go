package validate

import (
	"encoding/hex"
	"fmt"
	"io"
	"text/tabwriter"
)

func hexPreview(b []byte, width int) string {
	s := hex.EncodeToString(b)
	if len(s) <= width {
		return s
	}
	return s[:width] + "..."
}

// Report writes a human readable summary of both runs to w.
func Report(w io.Writer, c CollisionReport, a AvalancheReport) error {
	ew := &errWriter{w: w}

	ew.printf("SM3 property report\n")
	ew.printf("===================\n\n")

	ew.printf("--- collision resistance ---\n")
	ew.printf("samples hashed: %d\n\n", c.Samples)
	if len(c.Preview) > 0 {
		tw := tabwriter.NewWriter(ew, 0, 0, 1, ' ', 0)
		fmt.Fprintf(tw, "input (hex)\t| len\t| digest\n")
		for _, s := range c.Preview {
			fmt.Fprintf(tw, "%s\t| %d\t| %x\n", hexPreview(s.Input, 22), len(s.Input), s.Digest)
		}
		_ = tw.Flush()
		ew.printf("\n")
	}
	if c.Collisions == 0 {
		ew.printf("result: no collisions in %d samples\n\n", c.Samples)
	} else {
		ew.printf("result: %d collisions between distinct inputs, rate %.8f\n\n", c.Collisions, c.Rate)
	}

	ew.printf("--- avalanche ---\n")
	ew.printf("one random input bit flipped per message\n")
	ew.printf("samples used: %d / %d\n\n", a.Used, a.Samples)
	if len(a.Preview) > 0 {
		tw := tabwriter.NewWriter(ew, 0, 0, 1, ' ', 0)
		fmt.Fprintf(tw, "input (hex)\t| len\t| bits\t| rate\t| digest\n")
		for _, s := range a.Preview {
			rate := float64(s.Bits) / 256 * 100
			fmt.Fprintf(tw, "%s\t| %d\t| %d\t| %.2f%%\t| %x\n", hexPreview(s.Input, 22), len(s.Input), s.Bits, rate, s.Digest)
		}
		_ = tw.Flush()
		ew.printf("\n")
	}
	ew.printf("mean bits changed %.2f/256 (%.2f%%), stdev %.2f, min/max %d / %d\n",
		a.MeanBits, a.MeanRate*100, a.StdevBits, a.MinBits, a.MaxBits)
	if a.Good() {
		ew.printf("result: mean change is close to 50%%\n")
	} else {
		ew.printf("result: mean change is away from 50%%, increase samples or check the implementation\n")
	}

	return ew.err
}

// errWriter remembers the first write error so Report can check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e, format, args...)
}
