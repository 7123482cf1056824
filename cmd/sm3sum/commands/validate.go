package commands

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zeebo/sm3/internal/validate"
)

const maxValidateLen = 1 << 20

type validateFlags struct {
	collisions int
	avalanche  int
	maxLen     int
	seed       uint64
	show       int
}

func (f *validateFlags) check() error {
	switch {
	case f.collisions < 0:
		return newInputErrorf("--n-collision must not be negative")
	case f.avalanche < 0:
		return newInputErrorf("--n-avalanche must not be negative")
	case f.maxLen < 0 || f.maxLen > maxValidateLen:
		return newInputErrorf("--max-len must be in [0, %d]", maxValidateLen)
	case f.show < 0:
		return newInputErrorf("--show must not be negative")
	}
	return nil
}

func newValidateCmd(log *logrus.Logger) *cobra.Command {
	var f validateFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run collision and avalanche checks over random inputs",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.check(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				f.seed = uint64(time.Now().UnixNano())
			}
			return runValidate(cmd, log, &f)
		},
	}

	cmd.Flags().IntVar(&f.collisions, "n-collision", 2000, "number of samples for the collision check")
	cmd.Flags().IntVar(&f.avalanche, "n-avalanche", 1000, "number of samples for the avalanche check")
	cmd.Flags().IntVar(&f.maxLen, "max-len", 256, "maximum random message length in bytes")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for the message generator (default: random)")
	cmd.Flags().IntVar(&f.show, "show", 8, "number of samples to print")

	return cmd
}

func runValidate(cmd *cobra.Command, log *logrus.Logger, f *validateFlags) error {
	log.WithFields(logrus.Fields{
		"n_collision": f.collisions,
		"n_avalanche": f.avalanche,
		"max_len":     f.maxLen,
		"seed":        f.seed,
	}).Debug("starting validation")

	start := time.Now()
	c := validate.Collisions(validate.Config{
		Samples: f.collisions,
		MaxLen:  f.maxLen,
		Seed:    f.seed,
		Preview: f.show,
	})
	a := validate.Avalanche(validate.Config{
		Samples: f.avalanche,
		MaxLen:  f.maxLen,
		Seed:    f.seed,
		Preview: f.show,
	})
	log.WithField("elapsed", time.Since(start)).Debug("validation finished")

	if c.Collisions > 0 {
		log.WithField("collisions", c.Collisions).Warn("collisions between distinct inputs")
	}

	return errors.Wrap(validate.Report(cmd.OutOrStdout(), c, a), "write report")
}
