package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fshell/internal/files/filesystem"
	"github.com/vvka-141/fshell/internal/logging"
	"github.com/vvka-141/fshell/internal/manager"
	"github.com/vvka-141/fshell/internal/ui"
)

type fixture struct {
	fs    *filesystem.MemoryFileSystem
	mgr   *manager.Manager
	out   *bytes.Buffer
	shell *Shell
}

func newFixture(t *testing.T, input string, opts ...Option) *fixture {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/work")
	mgr, err := manager.New(mfs, "/work")
	require.NoError(t, err)

	out := &bytes.Buffer{}
	opts = append([]Option{WithBanner(false)}, opts...)
	return &fixture{
		fs:    mfs,
		mgr:   mgr,
		out:   out,
		shell: New(mgr, strings.NewReader(input), ui.NewRenderer(out, false), opts...),
	}
}

func TestNew_PanicsOnNil(t *testing.T) {
	mgr, err := manager.New(filesystem.NewMemoryFileSystem("/work"), "/work")
	require.NoError(t, err)
	r := ui.NewRenderer(io.Discard, false)

	tests := []struct {
		name string
		fn   func()
	}{
		{"manager", func() { New(nil, strings.NewReader(""), r) }},
		{"input", func() { New(mgr, nil, r) }},
		{"renderer", func() { New(mgr, strings.NewReader(""), nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

func TestRun_ExitStopsLoop(t *testing.T) {
	f := newFixture(t, "pwd\nexit\nmkdir never\n")

	require.NoError(t, f.shell.Run(context.Background()))
	assert.Equal(t, "> Current path: /work\n\n> ", f.out.String())

	exists, err := f.fs.Exists("/work/never")
	require.NoError(t, err)
	assert.False(t, exists, "commands after exit must not run")
}

func TestRun_EndOfInputTerminates(t *testing.T) {
	f := newFixture(t, "mkdir docs\ncd docs")

	require.NoError(t, f.shell.Run(context.Background()))
	assert.Equal(t, "/work/docs", f.mgr.CurrentDir())
	assert.True(t, strings.HasSuffix(f.out.String(), "> \n"))
}

func TestRun_CRLFInput(t *testing.T) {
	f := newFixture(t, "mkfile a.txt\r\nexit\r\n")

	require.NoError(t, f.shell.Run(context.Background()))
	assert.Contains(t, f.out.String(), "File created: /work/a.txt\n")
}

func TestRun_Banner(t *testing.T) {
	f := newFixture(t, "exit\n", WithBanner(true), WithPrompt("fs$ "))

	require.NoError(t, f.shell.Run(context.Background()))
	out := f.out.String()
	assert.True(t, strings.HasPrefix(out, helpTitle+"\n"))
	for _, line := range HelpLines() {
		assert.Contains(t, out, line)
	}
	assert.True(t, strings.HasSuffix(out, "fs$ "))
}

func TestRun_ContextCancelled(t *testing.T) {
	mgr, err := manager.New(filesystem.NewMemoryFileSystem("/work"), "/work")
	require.NoError(t, err)

	// The pipe is never written to, so the reader blocks until cancellation.
	pr, pw := io.Pipe()
	defer pw.Close()

	s := New(mgr, pr, ui.NewRenderer(io.Discard, false), WithBanner(false))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestRun_ReadError(t *testing.T) {
	mgr, err := manager.New(filesystem.NewMemoryFileSystem("/work"), "/work")
	require.NoError(t, err)
	s := New(mgr, failingReader{}, ui.NewRenderer(io.Discard, false), WithBanner(false))

	err = s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input: device gone")
}

func TestExecute_InvalidCommand(t *testing.T) {
	f := newFixture(t, "")

	before := f.mgr.CurrentDir()
	state := f.shell.Execute("frobnicate all the things")

	assert.Equal(t, StateRunning, state)
	assert.Equal(t, "Invalid command: frobnicate all the things\n\n", f.out.String())
	assert.Equal(t, 1, strings.Count(f.out.String(), "Invalid command"))
	assert.Equal(t, before, f.mgr.CurrentDir())
}

func TestExecute_MissingArguments(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"cd", "Specify a directory to change to"},
		{"mkfile", "Specify a file name to create"},
		{"mkdir", "Specify a directory name to create"},
		{"rm", "Specify a name to remove"},
		{"mv a", "Specify source and destination to move"},
		{"cp", "Specify source and destination to copy"},
		{"rn only", "Specify old and new name to rename"},
		{"sr", "Specify a pattern to search for"},
		{"stat", "Specify a name to inspect"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			f := newFixture(t, "")
			f.fs.AddFile("a", "a")
			f.fs.AddFile("only", "o")

			assert.Equal(t, StateRunning, f.shell.Execute(tt.line))
			assert.Equal(t, tt.want+"\n\n", f.out.String())

			for _, name := range []string{"a", "only"} {
				exists, err := f.fs.Exists("/work/" + name)
				require.NoError(t, err)
				assert.True(t, exists, "%s must not be touched", name)
			}
		})
	}
}

func TestExecute_Commands(t *testing.T) {
	f := newFixture(t, "")
	f.fs.AddFile("a.txt", "hello")
	f.fs.AddDir("sub")

	steps := []struct {
		line string
		want string
	}{
		{"ls", "a.txt\nsub\n\n"},
		{"pwd", "Current path: /work\n\n"},
		{"mkfile b.txt", "File created: /work/b.txt\n\n"},
		{"mkdir docs", "Directory created: /work/docs\n\n"},
		{"cp a.txt docs/a.txt", "File copied: /work/a.txt to /work/docs/a.txt\n\n"},
		{"rn b.txt c.txt", "Renamed /work/b.txt to /work/c.txt\n\n"},
		{"sr a.t", "Searching for files matching pattern: a.t\n/work/a.txt\n/work/docs/a.txt\n\n"},
		{"rm c.txt", "File removed: /work/c.txt\n\n"},
		{"cd docs", "Current directory changed to: /work/docs\n\n"},
		{"cd ..", "Current directory changed to: /work\n\n"},
		{"rm ghost", "Error: remove /work/ghost: file does not exist\n\n"},
		{"tree sub", "sub/ (0 B)\n\n"},
		{"   ", ""},
	}

	for _, step := range steps {
		f.out.Reset()
		assert.Equal(t, StateRunning, f.shell.Execute(step.line), step.line)
		assert.Equal(t, step.want, f.out.String(), step.line)
	}

	assert.Equal(t, StateTerminated, f.shell.Execute("  exit  "))
}

func TestExecute_ExtraArgumentsIgnored(t *testing.T) {
	f := newFixture(t, "")

	f.shell.Execute("mkdir one two")

	exists, err := f.fs.IsDir("/work/one")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.fs.Exists("/work/two")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExecute_HelpAndStat(t *testing.T) {
	f := newFixture(t, "")
	f.fs.AddFile("a.txt", "12345")

	f.shell.Execute("help")
	assert.Contains(t, f.out.String(), "mkfile <file> - create an empty file")

	f.out.Reset()
	f.shell.Execute("stat a.txt")
	assert.Contains(t, f.out.String(), "Size:     5 B (5 bytes)")
}

func TestExecute_LogsFailures(t *testing.T) {
	var logs bytes.Buffer
	f := newFixture(t, "", WithLogger(logging.NewConsoleLoggerTo(&logs, true)))

	f.shell.Execute("cd nowhere")
	assert.Contains(t, logs.String(), "[VERBOSE] cd failed (not-found)")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "terminated", StateTerminated.String())
	assert.Equal(t, "state(7)", State(7).String())
}
