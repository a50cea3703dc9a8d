package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/binomial/export"
	"github.com/katalvlaran/binomial/history"
	"github.com/katalvlaran/binomial/params"
	"github.com/katalvlaran/binomial/pmf"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const sessionHelp = `commands:
  set <n> <p>      compute a new distribution
  show             print the current distribution
  history          list previous parameters, most recent first
  select <i>       restore history entry i
  export [path]    write the current distribution as CSV (default -out, else ` + export.DefaultFileName + `)
  help             show this text
  quit             leave the session`

// session is the interactive front end: a history of parameter choices and
// the distribution of the current one, recomputed wholesale on every change.
type session struct {
	cfg     Config
	opts    []pmf.Option
	scale   int32
	out     io.Writer
	logger  *logrus.Logger
	history *history.History
	values  []decimal.Decimal
}

func newSession(initial params.Params, cfg Config, out io.Writer, logger *logrus.Logger) *session {
	opts := cfg.EngineOptions()
	return &session{
		cfg:     cfg,
		opts:    opts,
		scale:   pmf.Resolve(opts...).Scale(),
		out:     out,
		logger:  logger,
		history: history.New(initial),
	}
}

// run reads one command per line until quit, EOF or ctx cancellation.
// Command errors are printed and the session continues. Lines are read on a
// separate goroutine so cancellation is seen while waiting for input; that
// goroutine stays blocked in Read until in yields or closes.
func (s *session) run(ctx context.Context, in io.Reader) error {
	if err := s.recompute(); err != nil {
		return err
	}
	s.printCurrent()

	lines, readErr := readLines(ctx, in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-readErr; err != nil {
					return fmt.Errorf("read commands: %w", err)
				}
				return nil
			}
			quit, err := s.exec(strings.Fields(line))
			if err != nil {
				fmt.Fprintf(s.out, "error: %v\n", err)
				s.logger.WithError(err).Debug("command failed")
			}
			if quit {
				return nil
			}
		}
	}
}

// readLines streams the lines of in until EOF, a read error or ctx is done.
// The scanner error is sent on the second channel before the first closes.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		defer close(lines)
		defer func() { errc <- scanner.Err() }()
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines, errc
}

// exec runs one command and reports whether the session should end.
func (s *session) exec(fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "set":
		if len(args) != 2 {
			return false, errors.New("usage: set <n> <p>")
		}
		p, err := params.Parse(args[0], args[1], s.opts...)
		if err != nil {
			return false, err
		}
		if !s.history.Set(p) {
			s.printCurrent()
			return false, nil
		}
		return false, s.changed()

	case "show":
		return false, render(s.out, s.cfg.Format, s.values, s.scale)

	case "history":
		entries := s.history.Entries()
		if len(entries) == 0 {
			fmt.Fprintln(s.out, "history is empty")
			return false, nil
		}
		for i, e := range entries {
			fmt.Fprintf(s.out, "%d: %s\n", i, e)
		}
		return false, nil

	case "select":
		if len(args) != 1 {
			return false, errors.New("usage: select <i>")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("select %q: not an index", args[0])
		}
		if _, err := s.history.Select(i); err != nil {
			return false, err
		}
		return false, s.changed()

	case "export":
		path := export.DefaultFileName
		if s.cfg.Out != "" {
			path = s.cfg.Out
		}
		if len(args) > 0 {
			path = args[0]
		}
		if err := writeFile(path, func(w io.Writer) error {
			return export.WriteCSV(w, s.values, s.scale)
		}); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "wrote %s\n", path)
		s.logger.WithField("path", path).Info("distribution exported")
		return false, nil

	case "help":
		fmt.Fprintln(s.out, sessionHelp)
		return false, nil

	case "quit", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q, try help", cmd)
	}
}

// changed recomputes after the current parameters moved and echoes them.
func (s *session) changed() error {
	if err := s.recompute(); err != nil {
		return err
	}
	s.printCurrent()
	return nil
}

func (s *session) recompute() error {
	cur := s.history.Current()
	values, err := pmf.Compute(cur.N, cur.P, s.opts...)
	if err != nil {
		return err
	}
	s.values = values
	s.logger.WithFields(logrus.Fields{"n": cur.N, "p": cur.P.String()}).Debug("distribution recomputed")
	return nil
}

func (s *session) printCurrent() {
	fmt.Fprintf(s.out, "%s\n", s.history.Current())
}
