package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/fshell/internal/logging"
	"github.com/vvka-141/fshell/internal/manager"
	"github.com/vvka-141/fshell/internal/ui"
	"github.com/vvka-141/fshell/pkg/fshell"
)

// State is the state of the command loop.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const helpTitle = "Available commands:"

// Shell reads commands from an input stream and runs them against a
// Manager. A Shell is used by one goroutine at a time.
type Shell struct {
	manager  *manager.Manager
	in       io.Reader
	renderer *ui.Renderer
	logger   fshell.Logger
	prompt   string
	banner   bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the prompt printed before each line. Defaults to "> ".
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// WithBanner controls whether the command list is printed when Run starts.
func WithBanner(banner bool) Option {
	return func(s *Shell) { s.banner = banner }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger fshell.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Shell. Panics if any argument is nil.
func New(m *manager.Manager, in io.Reader, renderer *ui.Renderer, opts ...Option) *Shell {
	if m == nil {
		panic("manager cannot be nil")
	}
	if in == nil {
		panic("input cannot be nil")
	}
	if renderer == nil {
		panic("renderer cannot be nil")
	}

	s := &Shell{
		manager:  m,
		in:       in,
		renderer: renderer,
		logger:   logging.NewNullLogger(),
		prompt:   fshell.DefaultPrompt,
		banner:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prompts for and executes commands until "exit", end of input, or
// cancellation of ctx. It returns nil on "exit" and at end of input, and
// ctx.Err() when cancelled.
func (s *Shell) Run(ctx context.Context) error {
	if s.banner {
		s.renderer.Help(helpTitle, HelpLines())
	}

	lines := make(chan string)
	errs := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go readLines(s.in, lines, errs, done)

	for {
		s.renderer.Prompt(s.prompt)

		select {
		case <-ctx.Done():
			s.renderer.Line("")
			s.logger.Verbose("Shell cancelled: %v", ctx.Err())
			return ctx.Err()

		case err := <-errs:
			s.renderer.Line("")
			if errors.Is(err, io.EOF) {
				s.logger.Verbose("End of input")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)

		case line := <-lines:
			if s.Execute(line) == StateTerminated {
				return nil
			}
		}
	}
}

// Execute runs a single command line and reports whether the loop should
// keep running. Empty lines are ignored. An unknown command prints
// "Invalid command: <line>" and changes nothing.
func (s *Shell) Execute(line string) State {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return StateRunning
	}

	switch tokens[0] {
	case exitCommand:
		return StateTerminated
	case helpCommand:
		s.renderer.Help(helpTitle, HelpLines())
		return StateRunning
	}

	cmd, ok := commandIndex[tokens[0]]
	if !ok {
		s.renderer.Notice("Invalid command: " + line)
		return StateRunning
	}

	args := tokens[1:]
	if len(args) < cmd.args {
		s.renderer.Notice(cmd.usage)
		return StateRunning
	}

	res := cmd.run(s.manager, args)
	if !res.Succeeded() {
		s.logger.Verbose("%s failed (%s): %v", cmd.name, res.Kind(), res.Err)
	}
	s.renderer.Result(res)
	return StateRunning
}

// readLines sends each line of in, without its line ending, until in is
// exhausted or done is closed. The terminal read error (io.EOF included)
// is sent on errs.
func readLines(in io.Reader, lines chan<- string, errs chan<- error, done <-chan struct{}) {
	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" || err == nil {
			select {
			case lines <- strings.TrimRight(line, "\r\n"):
			case <-done:
				return
			}
		}
		if err != nil {
			errs <- err
			return
		}
	}
}
