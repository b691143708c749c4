// Package runner applies a scanned env configuration to an environment and
// carries out the resulting action: printing the environment or running a
// command inside it.
package runner

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/afero"

	"github.com/rethab/coreutils/core/envfile"
	"github.com/rethab/coreutils/core/environ"
	"github.com/rethab/coreutils/core/scan"
)

// Runner holds the capabilities of a single env invocation.
type Runner struct {
	// Args is the argument list without the program name argv[0].
	Args []string
	// Env is the environment the invocation starts from and mutates.
	Env environ.Env
	// FS is used to read --file arguments.
	FS afero.Fs

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Spawn starts the captured command. If nil, the command is run as a
	// child process of this one.
	Spawn SpawnFunc

	// Version is printed by --version.
	Version string
}

// Run executes the invocation and returns its exit status.
func (r *Runner) Run() int {
	cfg, err := scan.Parse(r.Args, r.Stderr)
	switch {
	case errors.Is(err, scan.ErrHelp):
		scan.PrintUsage(r.Stdout)
		return 0
	case errors.Is(err, scan.ErrVersion):
		fmt.Fprintf(r.Stdout, "%s %s\n", scan.Name, r.Version)
		return 0
	case err != nil:
		fmt.Fprintf(r.Stderr, "%s: %v\n", scan.Name, err)
		fmt.Fprintf(r.Stderr, "Type \"%s --help\" for detailed information\n", scan.Name)
		return 1
	}

	if err := r.assemble(cfg); err != nil {
		fmt.Fprintf(r.Stderr, "%s: error: %v\n", scan.Name, err)
		return 1
	}

	if len(cfg.Program) == 0 {
		return r.printEnv(cfg.NullTerminated)
	}
	return r.exec(cfg.Program)
}

// assemble mutates the environment in the fixed order: clear, files,
// unsets, inline assignments. Later steps override earlier ones, so an
// inline assignment survives an earlier unset and wins over file values.
func (r *Runner) assemble(cfg *scan.Config) error {
	if cfg.ClearEnv {
		r.Env.Clearenv()
	}

	for _, path := range cfg.Files {
		pairs, err := envfile.Load(r.FS, r.Stdin, path)
		if err != nil {
			return err
		}
		for _, pair := range pairs {
			if err := r.Env.Setenv(pair.Name, pair.Value); err != nil {
				return err
			}
		}
	}

	for _, name := range cfg.Unsets {
		if err := r.Env.Unsetenv(name); err != nil {
			return err
		}
	}

	for _, set := range cfg.Sets {
		if err := r.Env.Setenv(set.Name, set.Value); err != nil {
			return err
		}
	}

	return nil
}

// printEnv writes every name=value pair, each terminated by a newline, or
// by a 0 byte under --null. Pairs are sorted by name.
func (r *Runner) printEnv(null bool) int {
	terminator := "\n"
	if null {
		terminator = "\x00"
	}

	env := r.Env.Environ()
	sort.Strings(env)
	for _, envDef := range env {
		fmt.Fprintf(r.Stdout, "%s%s", envDef, terminator)
	}
	return 0
}

// exec runs the captured program inside the assembled environment, blocks
// until it terminates and maps the outcome to an exit status: the child's
// own status when it exits normally, 1 when it cannot be spawned or is
// killed.
func (r *Runner) exec(program []string) int {
	name, args := resolveInvocation(r.Env, program)

	spawn := r.Spawn
	if spawn == nil {
		spawn = r.childSpawn
	}

	status, err := spawn(name, args, r.Env.Environ())
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s: %v\n", scan.Name, err)
		return 1
	}
	return status
}
