package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitInputError = 2
)

// inputError marks failures caused by what the user asked for: bad flags,
// undecodable hex, files that cannot be opened.
type inputError struct {
	error
}

func (e inputError) Unwrap() error { return e.error }

func newInputError(err error) error {
	return inputError{err}
}

func newInputErrorf(format string, args ...interface{}) error {
	return inputError{errors.Errorf(format, args...)}
}

type globalFlags struct {
	verbose bool
}

// NewRootCmd builds the sm3sum command tree. Diagnostics go to log.
func NewRootCmd(log *logrus.Logger) *cobra.Command {
	var gf globalFlags

	root := newHashCmd(log)
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "log debug information to stderr")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if gf.verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(newValidateCmd(log))
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newInputError(err)
	})
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return newInputError(err)
	}
	return nil
}

// Execute runs sm3sum with the given arguments and streams and returns the
// process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)

	root := NewRootCmd(log)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	var ie inputError
	if errors.As(err, &ie) {
		fmt.Fprintln(stderr, err)
		return ExitInputError
	}

	log.WithError(err).Error("sm3sum failed")
	return ExitFailure
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, newInputError(err)
	}
	return fh, nil
}
