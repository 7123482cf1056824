package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zeebo/sm3"
)

type hashFlags struct {
	str  string
	hex  string
	file string
	raw  bool
}

// source returns which input flag was given. With none, the empty message
// is hashed.
func (f *hashFlags) source(fs *pflag.FlagSet) (string, error) {
	var given []string
	for _, name := range []string{"string", "hex", "file"} {
		if fs.Changed(name) {
			given = append(given, name)
		}
	}

	switch len(given) {
	case 0:
		return "", nil
	case 1:
		return given[0], nil
	default:
		return "", newInputErrorf("flags --%s are mutually exclusive", strings.Join(given, ", --"))
	}
}

// decodeHex decodes pairs of hex digits. Whitespace may separate pairs but
// may not split one.
func decodeHex(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); {
		if strings.IndexByte(" \t\n\r\v\f", s[i]) >= 0 {
			i++
			continue
		}
		if i+2 > len(s) {
			return nil, errors.Errorf("odd number of hex digits at position %d", i)
		}

		var b [1]byte
		if _, err := hex.Decode(b[:], []byte(s[i:i+2])); err != nil {
			return nil, errors.Wrapf(err, "position %d", i)
		}
		out = append(out, b[0])
		i += 2
	}
	return out, nil
}

func newHashCmd(log *logrus.Logger) *cobra.Command {
	var f hashFlags

	cmd := &cobra.Command{
		Use:   "sm3sum",
		Short: "Compute SM3 digests",
		Long: "sm3sum prints the SM3 digest of a string, a hex literal or a file " +
			"(\"-\" reads stdin). With no input flag it hashes the empty message.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, log, &f)
		},
	}

	cmd.Flags().StringVarP(&f.str, "string", "s", "", "hash a UTF-8 string")
	cmd.Flags().StringVarP(&f.hex, "hex", "x", "", "hash hex-encoded bytes")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "hash file contents")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "write the raw 32 byte digest instead of hex")

	return cmd
}

func runHash(cmd *cobra.Command, log *logrus.Logger, f *hashFlags) error {
	src, err := f.source(cmd.Flags())
	if err != nil {
		return err
	}

	start := time.Now()
	h := sm3.New()
	var n int64

	switch src {
	case "string":
		_, _ = h.WriteString(f.str)
		n = int64(len(f.str))

	case "hex":
		data, err := decodeHex(f.hex)
		if err != nil {
			return newInputError(errors.Wrap(err, "invalid hex input"))
		}
		_, _ = h.Write(data)
		n = int64(len(data))

	case "file":
		in, err := openInput(f.file, cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer func() { _ = in.Close() }()

		// writes to a Hasher never fail, so any error here came from reading
		n, err = io.Copy(h, in)
		if err != nil {
			return newInputError(errors.Wrap(err, "read input"))
		}
	}

	log.WithFields(logrus.Fields{
		"source":  src,
		"bytes":   n,
		"elapsed": time.Since(start),
	}).Debug("hashed input")

	digest := h.Digest()
	out := cmd.OutOrStdout()
	if f.raw {
		_, err = out.Write(digest[:])
	} else {
		_, err = fmt.Fprintln(out, hex.EncodeToString(digest[:]))
	}
	return errors.Wrap(err, "write digest")
}
