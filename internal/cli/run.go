package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/binomial/export"
	"github.com/katalvlaran/binomial/pmf"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Run executes the command: a single computation written to stdout or
// cfg.Out, or an interactive session reading commands from in. In a session
// cfg.Out is only the default path of the export command.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(errOut, cfg.Verbose)

	initial, err := cfg.Params()
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"n": initial.N, "p": initial.P.String()}).Debug("parameters accepted")

	if cfg.Interactive {
		s := newSession(initial, cfg, out, logger)
		return s.run(ctx, in)
	}

	values, err := pmf.Compute(initial.N, initial.P, cfg.EngineOptions()...)
	if err != nil {
		return err
	}
	logger.WithField("terms", len(values)).Debug("distribution computed")

	scale := pmf.Resolve(cfg.EngineOptions()...).Scale()
	if cfg.Out == "" {
		return render(out, cfg.Format, values, scale)
	}
	if err := writeFile(cfg.Out, func(w io.Writer) error {
		return render(w, cfg.Format, values, scale)
	}); err != nil {
		return err
	}
	logger.WithField("path", cfg.Out).Info("distribution written")
	return nil
}

// newLogger builds a text logger on w; verbose enables debug entries.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func render(w io.Writer, format string, values []decimal.Decimal, scale int32) error {
	switch format {
	case FormatTable:
		return export.WriteTable(w, values, scale)
	case FormatCSV:
		return export.WriteCSV(w, values, scale)
	case FormatChart:
		return export.WriteBars(w, values, export.DefaultBarWidth)
	default:
		return fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}
}

// writeFile creates path and hands it to write, reporting close errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
