// SPDX-License-Identifier: MIT

// Package console is the interactive front end of echelon: it reads commands
// and matrices from a token stream, dispatches them to the matrix package and
// renders results and row-operation traces to a writer.
//
// Commands:
//
//	-1  quit
//	 0  help
//	 1  add two matrices
//	 2  multiply two matrices
//	 3  row-echelon form
//	 4  reduced row-echelon form
//	 5  toggle random fill
//
// End of input ends the session like quit.
package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/echelon/config"
	"github.com/katalvlaran/echelon/matrix"
)

// Command is one entry of the action menu.
type Command int

const (
	CmdQuit         Command = -1
	CmdHelp         Command = 0
	CmdAdd          Command = 1
	CmdMultiply     Command = 2
	CmdREF          Command = 3
	CmdRREF         Command = 4
	CmdToggleRandom Command = 5

	// cmdInvalid stands for input that is not a number at all.
	cmdInvalid Command = -2
)

var commandNames = map[Command]string{
	CmdQuit:         "quit",
	CmdHelp:         "help",
	CmdAdd:          "add",
	CmdMultiply:     "multiply",
	CmdREF:          "ref",
	CmdRREF:         "rref",
	CmdToggleRandom: "toggle-random",
}

// String returns the command's name, or "unknown(n)".
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}

	return fmt.Sprintf("unknown(%d)", int(c))
}

const helpText = "-1 for termination\n" +
	" 0 for help\n" +
	" 1 for addition\n" +
	" 2 for multiplication\n" +
	" 3 for row echelon form\n" +
	" 4 for reduced row echelon form\n" +
	" 5 to toggle random fill\n\n"

const (
	msgInvalidCommand = "Invalid command\n"
	msgAddImpossible  = "Addition of these matrices is not possible.\n"
	msgMulImpossible  = "Multiplication of these matrices is not possible.\n"
	msgRandomOn       = "Random fill enabled.\n\n"
	msgRandomOff      = "Random fill disabled.\n\n"
	msgPivots         = "Pivots found: %d\n\n"
	msgReduceFailed   = "Reduction stopped: %v\n\n"
)

// Session is one interactive run. It owns the random-fill toggle; nothing is
// shared between sessions.
type Session struct {
	in       *tokens
	out      io.Writer
	settings config.Settings
	prompts  bool
	random   bool
	src      matrix.IntSource
	reducer  *matrix.Reducer
	log      *log.Entry
}

// Option configures a Session.
type Option func(*Session)

// WithPrompts turns prompt output on or off. Prompts default to the
// settings' ForcePrompt.
func WithPrompts(on bool) Option {
	return func(s *Session) { s.prompts = on }
}

// WithLogger sets the diagnostics logger (default: the logrus standard logger).
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.log = log.NewEntry(l) }
}

// WithIntSource overrides the random source derived from the settings.
func WithIntSource(src matrix.IntSource) Option {
	return func(s *Session) { s.src = src }
}

// NewSession wires a session reading from in and writing to out.
// settings are validated with Resolve first.
func NewSession(in io.Reader, out io.Writer, settings config.Settings, opts ...Option) (*Session, error) {
	if err := settings.Resolve(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}
	s := &Session{
		in:       newTokens(in),
		out:      out,
		settings: settings,
		prompts:  settings.ForcePrompt,
		random:   settings.RandomFill,
		src:      settings.IntSource(),
		log:      log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reducer = matrix.NewReducer(settings.ReducerOptions(matrix.TracerFunc(s.trace))...)

	return s, nil
}

// Random reports the current state of the random-fill toggle.
func (s *Session) Random() bool { return s.random }

// Run reads and executes commands until quit or end of input.
// Only I/O failures are returned; bad input is reported to the user.
func (s *Session) Run() error {
	s.log.WithFields(log.Fields{
		"random": s.random,
		"exact":  s.settings.ExactPivot,
		"eps":    s.settings.PivotEpsilon,
	}).Debug("session started")
	for {
		cmd, err := s.readCommand()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		more, err := s.Do(cmd)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// readCommand prompts for and reads one command word. A word that is not an
// integer maps to an unknown command.
func (s *Session) readCommand() (Command, error) {
	s.promptf("%s", s.settings.Prompt)
	tok, err := s.in.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		s.log.WithField("input", tok).Debug("command is not a number")
		return cmdInvalid, nil
	}

	return Command(n), nil
}

// Do executes one command. It returns false once the session should end.
func (s *Session) Do(cmd Command) (bool, error) {
	s.log.WithFields(log.Fields{"command": cmd.String(), "random": s.random}).Debug("dispatch")
	switch cmd {
	case CmdQuit:
		return false, nil
	case CmdHelp:
		fmt.Fprint(s.out, helpText)
	case CmdAdd:
		return true, s.binary(matrix.Add, msgAddImpossible)
	case CmdMultiply:
		return true, s.binary(matrix.Mul, msgMulImpossible)
	case CmdREF:
		return true, s.reduce(matrix.FormREF)
	case CmdRREF:
		return true, s.reduce(matrix.FormRREF)
	case CmdToggleRandom:
		s.random = !s.random
		if s.random {
			fmt.Fprint(s.out, msgRandomOn)
		} else {
			fmt.Fprint(s.out, msgRandomOff)
		}
	default:
		fmt.Fprint(s.out, msgInvalidCommand)
	}

	return true, nil
}

// binary reads two plain matrices, applies op and prints the result, or
// failMsg when the operands are incompatible.
func (s *Session) binary(op func(a, b matrix.Matrix) (*matrix.Dense, error), failMsg string) error {
	a, err := s.createMatrix(false)
	if err != nil {
		return err
	}
	b, err := s.createMatrix(false)
	if err != nil {
		return err
	}
	res, err := op(a, b)
	if err != nil {
		if errors.Is(err, matrix.ErrShapeMismatch) || errors.Is(err, matrix.ErrAugmentedOperand) {
			s.log.WithError(err).Debug("operation rejected")
			fmt.Fprint(s.out, failMsg)
			return nil
		}
		return errors.WithStack(err)
	}
	s.print(res)

	return nil
}

// reduce reads one matrix, prints it, reduces it to form and prints the result.
func (s *Session) reduce(form matrix.Form) error {
	m, err := s.createMatrix(s.settings.AugmentedReduce)
	if err != nil {
		return err
	}
	if !s.random {
		s.print(m)
	}
	st, err := s.reducer.Reduce(m, form)
	if err != nil {
		s.log.WithError(errors.Wrapf(err, "%s reduction", form)).Warning("reduction failed")
		fmt.Fprintf(s.out, msgReduceFailed, err)
		return nil
	}
	s.log.WithFields(log.Fields{"form": form.String(), "pivots": st.Count, "columns": st.Columns}).Debug("reduced")
	fmt.Fprintf(s.out, "%s:\n", form)
	s.print(m)
	fmt.Fprintf(s.out, msgPivots, st.Count)

	return nil
}

// trace is the Tracer of the session's reducer: the operation line, an empty
// line, then the matrix after the operation.
func (s *Session) trace(op matrix.Operation, m *matrix.Dense) {
	fmt.Fprintf(s.out, "%s\n\n", op)
	s.print(m)
}

// print renders m; rendering errors can only come from the writer and are logged.
func (s *Session) print(m matrix.Matrix) {
	if err := matrix.Fprint(s.out, m); err != nil {
		s.log.WithError(err).Warning("cannot print matrix")
	}
}

// promptf writes a prompt when prompts are enabled.
func (s *Session) promptf(format string, args ...interface{}) {
	if s.prompts {
		fmt.Fprintf(s.out, format, args...)
	}
}
