package runner

import "fmt"

// ComposeSSH builds the local ssh invocation for running a command on a
// remote host with key-based auth and host-key checking disabled. The
// remote side changes into remoteDir (home when empty), sources the
// user's profile and runs the command.
//
// Fields are interpolated verbatim. Values containing quotes or shell
// metacharacters will break or alter the composed command; callers own
// that contract.
func ComposeSSH(user, host, keyPath, command, remoteDir string) string {
	if remoteDir == "" {
		remoteDir = "~"
	}
	return fmt.Sprintf(
		`ssh -i %s -o StrictHostKeyChecking=no %s@%s "cd %s && source ~/.bash_profile && %s"`,
		keyPath, user, host, remoteDir, command,
	)
}

// SSH composes the remote invocation and runs it interactively through
// SpawnSync, returning that result unchanged.
func (r *Runner) SSH(user, host, keyPath, command, remoteDir string) Result {
	return r.SpawnSync(ComposeSSH(user, host, keyPath, command, remoteDir))
}
