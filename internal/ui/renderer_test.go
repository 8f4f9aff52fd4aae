package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/fshell/pkg/fshell"
)

func TestNewRenderer_NilWriterPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil writer")
		}
	}()
	NewRenderer(nil, false)
}

func TestRenderer_PlainResult(t *testing.T) {
	tests := []struct {
		name string
		res  fshell.Result
		want string
	}{
		{
			name: "message only",
			res:  fshell.Result{Op: "pwd", Message: "Current path: /work"},
			want: "Current path: /work\n\n",
		},
		{
			name: "output lines",
			res:  fshell.Result{Op: "list", Output: []string{"a.txt", "b"}},
			want: "a.txt\nb\n\n",
		},
		{
			name: "empty listing",
			res:  fshell.Result{Op: "list"},
			want: "\n",
		},
		{
			name: "failure",
			res:  fshell.Failed("remove", errors.New("remove /x: file does not exist")),
			want: "Error: remove /x: file does not exist\n\n",
		},
		{
			name: "message and output",
			res: fshell.Result{
				Op:      "search",
				Message: "Searching for files matching pattern: a",
				Output:  []string{"/work/a.txt"},
			},
			want: "Searching for files matching pattern: a\n/work/a.txt\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewRenderer(&buf, false).Result(tt.res)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderer_Styled(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)
	assert.True(t, r.Styled())

	r.Result(fshell.Result{Op: "mkdir", Message: "Directory created: /work/d"})
	r.Result(fshell.Failed("mkdir", errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, SymbolCheck+" Directory created: /work/d")
	assert.Contains(t, out, SymbolCross+" Error: boom")
	assert.Contains(t, out, "\x1b[", "styled output should carry ANSI sequences")
}

func TestRenderer_PlainHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	r.Prompt("> ")
	r.Notice("Specify a name to remove")
	r.Help("Commands:", []string{"ls - list"})

	assert.Equal(t, "> Specify a name to remove\n\nCommands:\nls - list\n\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}
