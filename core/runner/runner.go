// Package runner invokes external processes and normalizes their outcome.
//
// Every public operation is total: spawn failures, non-zero exits and
// anything else that goes wrong all collapse into a Result, never an
// error return.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/yourusername/runx/core/shellwords"
)

// Result is the normalized outcome of a single process invocation.
// Message holds captured stdout on success, or a diagnostic (captured
// stderr or an error description) on failure.
type Result struct {
	Success bool
	Message string
}

// Diagnostic receives out-of-band output that does not belong in a
// Result, such as stderr from a command that still exited zero.
type Diagnostic func(message string)

// Runner spawns child processes for command strings. The zero value is
// not usable; construct with New.
type Runner struct {
	workDir string
	diag    Diagnostic
}

// New creates a Runner with no working-directory override and a no-op
// diagnostic sink.
func New() *Runner {
	return &Runner{
		diag: func(string) {},
	}
}

// WithDir sets the working directory for spawned processes. An empty
// dir inherits the current process's directory.
func (r *Runner) WithDir(dir string) *Runner {
	r.workDir = dir
	return r
}

// WithDiagnostic sets the sink for out-of-band diagnostics.
func (r *Runner) WithDiagnostic(fn Diagnostic) *Runner {
	if fn != nil {
		r.diag = fn
	}
	return r
}

// SpawnSync runs a command with the parent's stdin, stdout and stderr
// attached, so the caller sees live output. Exit zero maps to
// {true, "Process completed"}; a non-zero exit reports the code.
func (r *Runner) SpawnSync(command string) Result {
	cmd, res := r.prepare(command)
	if cmd == nil {
		return res
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return exitResult(cmd.Run())
}

// Exec runs a command with stdout and stderr captured into buffers.
// On success Message is the trimmed stdout; on a non-zero exit it is
// the trimmed stderr. Stderr written by a succeeding command goes to
// the diagnostic sink instead of the Result.
func (r *Runner) Exec(command string) Result {
	cmd, res := r.prepare(command)
	if cmd == nil {
		return res
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Success: false, Message: strings.TrimSpace(stderr.String())}
		}
		return failure(err)
	}

	if warn := strings.TrimSpace(stderr.String()); warn != "" {
		r.diag(warn)
	}

	return Result{Success: true, Message: strings.TrimSpace(stdout.String())}
}

// prepare tokenizes the command string and builds the exec.Cmd. A nil
// Cmd means the command could not be prepared and res holds the failure.
func (r *Runner) prepare(command string) (*exec.Cmd, Result) {
	argv := shellwords.Split(command)
	if len(argv) == 0 {
		return nil, failure(errors.New("empty command"))
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = r.workDir
	return cmd, Result{}
}

// exitResult maps a Run/Wait error to the interactive-mode Result.
func exitResult(err error) Result {
	if err == nil {
		return Result{Success: true, Message: "Process completed"}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{
			Success: false,
			Message: fmt.Sprintf("Process failed with code %d", exitErr.ExitCode()),
		}
	}
	return failure(err)
}

// failure normalizes an arbitrary error into a Result.
func failure(err error) Result {
	if err == nil {
		return Result{Success: false, Message: "unknown error"}
	}
	return Result{Success: false, Message: err.Error()}
}
