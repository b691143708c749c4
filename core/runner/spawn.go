package runner

import (
	"errors"
	"os/exec"
	"runtime"

	"github.com/rethab/coreutils/core/environ"
)

// SpawnFunc starts name with args and the given environment, waits for it
// to terminate and returns its exit status. A non-nil error means the
// process could not be started.
type SpawnFunc func(name string, args []string, env []string) (int, error)

// resolveInvocation decides how the captured tokens become an executable
// invocation. On Windows there is no direct shebang-style execution, so
// the whole vector is routed through the command interpreter.
func resolveInvocation(env environ.Env, program []string) (string, []string) {
	if runtime.GOOS == "windows" {
		shell := env.Getenv("ComSpec")
		if shell == "" {
			shell = "cmd"
		}
		return shell, append([]string{"/d/c"}, program...)
	}
	return program[0], program[1:]
}

// childSpawn is the default SpawnFunc: it runs the command as a child
// process wired to the invocation's stdio.
func (r *Runner) childSpawn(name string, args []string, env []string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Killed by a signal.
		return 1, nil
	}
	return 0, err
}
