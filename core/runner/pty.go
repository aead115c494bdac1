package runner

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// SpawnPTY runs a command behind a pseudo-terminal with full
// passthrough to the caller's terminal, for child programs that need a
// TTY (editors, pagers, TUIs). Exit status maps to the same Result as
// SpawnSync.
func (r *Runner) SpawnPTY(command string) Result {
	cmd, res := r.prepare(command)
	if cmd == nil {
		return res
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return failure(err)
	}
	defer func() { _ = ptmx.Close() }()

	// Forward terminal resizes to the child.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	go func() {
		for range ch {
			_ = pty.InheritSize(os.Stdin, ptmx)
		}
	}()
	ch <- syscall.SIGWINCH
	defer func() { signal.Stop(ch); close(ch) }()

	// Raw mode fails when stdin is not a terminal; passthrough still
	// works, just without keystroke-level forwarding.
	if oldState, rawErr := term.MakeRaw(int(os.Stdin.Fd())); rawErr == nil {
		defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()
	}

	go func() { _, _ = io.Copy(ptmx, os.Stdin) }()
	go func() { _, _ = io.Copy(os.Stdout, ptmx) }()

	return exitResult(cmd.Wait())
}
