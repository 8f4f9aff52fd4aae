package main

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/vvka-141/fshell/pkg/fshell"
)

// TestMainProcess is re-executed as a child process by the tests below.
func TestMainProcess(t *testing.T) {
	if os.Getenv("FSHELL_MAIN_PROCESS") != "1" {
		t.Skip("helper process")
	}
	os.Args = []string{"fshell", "--no-banner", "--dir", os.TempDir()}
	main()
	os.Exit(fshell.ExitSuccess)
}

func runMain(t *testing.T, env ...string) int {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^TestMainProcess$")
	cmd.Env = append(os.Environ(), append([]string{"FSHELL_MAIN_PROCESS=1", "XDG_CONFIG_HOME=" + t.TempDir()}, env...)...)

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if err != nil {
		t.Fatalf("failed to run helper process: %v", err)
	}
	return 0
}

func TestMain_PanicExitCode(t *testing.T) {
	if code := runMain(t, "FSHELL_TEST_PANIC=1"); code != fshell.ExitPanic {
		t.Errorf("exit code = %d, want %d", code, fshell.ExitPanic)
	}
}

func TestMain_EndOfInputExitsCleanly(t *testing.T) {
	if code := runMain(t); code != fshell.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, fshell.ExitSuccess)
	}
}
