package execute

import (
	"os/exec"
	"syscall"
)

// Shell runs bound commands as `Shell -c command`.
var Shell = "sh"

// Command starts command in its own session with no stdio and returns
// without waiting for it.
func Command(command string) error {
	if command == "" {
		return nil
	}

	cmd := exec.Command(Shell, "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	return cmd.Start()
}
