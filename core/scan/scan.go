// Package scan turns the raw argument list of an env invocation into a
// Config describing the environment changes to apply and the command to
// run, if any.
package scan

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Name is the utility name used in diagnostics and usage text.
const Name = "env"

// Config is the result of scanning an argument list.
type Config struct {
	// ClearEnv starts from an empty environment instead of the ambient one.
	ClearEnv bool
	// NullTerminated ends each printed variable with a 0 byte rather than
	// a newline. Only valid when no program is given.
	NullTerminated bool
	// Files holds the paths of env files to load, in order. "-" means
	// standard input.
	Files []string
	// Unsets holds variable names to remove, in order.
	Unsets []string
	// Sets holds NAME=VALUE assignments from the command line, in order.
	Sets []Assignment
	// Program is the command to run and its arguments. Empty means print
	// the environment instead.
	Program []string
}

// Assignment is a single NAME=VALUE pair.
type Assignment struct {
	Name  string
	Value string
}

// ErrHelp is returned by Parse when --help is requested.
var ErrHelp = errors.New("help requested")

// ErrVersion is returned by Parse when --version is requested.
var ErrVersion = errors.New("version requested")

// ErrNullWithCommand is returned by Parse when --null is combined with a
// command; the two modes are incompatible.
var ErrNullWithCommand = errors.New("cannot specify --null (-0) with command")

// InvalidOptionError reports an unrecognized long option.
type InvalidOptionError struct {
	Option string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %q", e.Option)
}

// IllegalFlagError reports an unrecognized character in a short flag
// cluster.
type IllegalFlagError struct {
	Flag rune
}

func (e *IllegalFlagError) Error() string {
	return fmt.Sprintf("illegal option -- %c", e.Flag)
}

// A token is classified exactly once per scan; the classes feed the state
// machine in Parse.
type tokenClass int

const (
	// classWord is anything that is neither an option nor an assignment;
	// it names the program to run.
	classWord tokenClass = iota
	// classDash is a bare "-".
	classDash
	// classLong starts with "--".
	classLong
	// classShort starts with "-" and has at least one more character.
	classShort
	// classAssign has the NAME=VALUE shape with a non-empty NAME.
	classAssign
)

func classify(tok string) tokenClass {
	switch {
	case tok == "-":
		return classDash
	case strings.HasPrefix(tok, "--"):
		return classLong
	case strings.HasPrefix(tok, "-"):
		return classShort
	}
	if _, _, ok := splitAssignment(tok); ok {
		return classAssign
	}
	return classWord
}

// splitAssignment splits tok at the first "=". The name must be non-empty;
// the value may itself contain "=".
func splitAssignment(tok string) (name, value string, ok bool) {
	i := strings.IndexByte(tok, '=')
	if i <= 0 {
		return "", "", false
	}
	return tok[:i], tok[i+1:], true
}

const (
	longSplitString  = "--split-string"
	shortSplitString = "-S"
)

// Scanner states. Once capture begins it never ends: every later token
// belongs to the program verbatim, however option-like it looks.
type state int

const (
	stateScanning state = iota
	stateCapturing
)

// Parse scans args (without the program name argv[0]) left to right and
// builds a Config.
//
// Recoverable problems, currently only a missing required argument, are
// reported on stderr and scanning continues. Fatal problems return an
// error: ErrHelp and ErrVersion ask the caller to print usage or version
// and exit 0; every other error means a usage failure and exit status 1.
func Parse(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}
	st := stateScanning

	for i := 0; i < len(args); i++ {
		tok := args[i]

		if st == stateCapturing {
			// Assignments may still pile up until the program name itself
			// shows up.
			if name, value, ok := splitAssignment(tok); ok {
				cfg.Sets = append(cfg.Sets, Assignment{Name: name, Value: value})
				continue
			}
			return capture(cfg, args[i:])
		}

		switch classify(tok) {
		case classDash:
			// A mere - implies -i and ends option recognition.
			cfg.ClearEnv = true
			st = stateCapturing

		case classLong:
			switch {
			case tok == "--help":
				return nil, ErrHelp
			case tok == "--version":
				return nil, ErrVersion
			case tok == "--ignore-environment":
				cfg.ClearEnv = true
			case tok == "--null":
				cfg.NullTerminated = true
			case tok == "--file":
				if arg, ok := nextArg(args, &i, tok, stderr); ok {
					cfg.Files = append(cfg.Files, arg)
				}
			case tok == "--unset":
				if arg, ok := nextArg(args, &i, tok, stderr); ok {
					cfg.Unsets = append(cfg.Unsets, arg)
				}
			case strings.HasPrefix(tok, longSplitString):
				scanSplitString(cfg, args, &i, tok, len(longSplitString), stderr)
			default:
				return nil, &InvalidOptionError{Option: tok}
			}

		case classShort:
			if strings.HasPrefix(tok, shortSplitString) {
				scanSplitString(cfg, args, &i, tok, len(shortSplitString), stderr)
				continue
			}
			for _, c := range tok[1:] {
				switch c {
				case 'i':
					cfg.ClearEnv = true
				case '0':
					cfg.NullTerminated = true
				case 'f':
					if arg, ok := nextArg(args, &i, tok, stderr); ok {
						cfg.Files = append(cfg.Files, arg)
					}
				case 'u':
					if arg, ok := nextArg(args, &i, tok, stderr); ok {
						cfg.Unsets = append(cfg.Unsets, arg)
					}
				default:
					return nil, &IllegalFlagError{Flag: c}
				}
			}

		case classAssign:
			name, value, _ := splitAssignment(tok)
			cfg.Sets = append(cfg.Sets, Assignment{Name: name, Value: value})
			st = stateCapturing

		default: // classWord: the program name.
			return capture(cfg, args[i:])
		}
	}

	return cfg, nil
}

// scanSplitString handles both addressing forms of --split-string/-S: the
// payload either follows as the next raw token, or is glued directly onto
// the option. The payload is whitespace-split and appended to the program
// vector, but option scanning continues afterwards: unlike a program name
// token, split-string never begins capture. A later real program token
// therefore appends after the split pieces.
func scanSplitString(cfg *Config, args []string, i *int, tok string, optLen int, stderr io.Writer) {
	if rest := tok[optLen:]; rest != "" {
		cfg.Program = append(cfg.Program, Split(strings.TrimSpace(rest))...)
		return
	}
	if arg, ok := nextArg(args, i, tok, stderr); ok {
		cfg.Program = append(cfg.Program, Split(arg)...)
	}
}

// capture finalizes the scan: rest[0] is the program name and everything
// after it is passed through verbatim. Printing with -0 and running a
// command are mutually exclusive, checked here at the moment capture
// begins; the flag cannot be set afterwards.
func capture(cfg *Config, rest []string) (*Config, error) {
	if cfg.NullTerminated {
		return nil, ErrNullWithCommand
	}
	cfg.Program = append(cfg.Program, rest...)
	return cfg, nil
}

// nextArg consumes the raw token after *i as the required argument of opt.
// If none remains the problem is reported and scanning continues.
func nextArg(args []string, i *int, opt string, stderr io.Writer) (string, bool) {
	*i++
	if *i >= len(args) {
		fmt.Fprintf(stderr, "%s: this option requires an argument: %s\n", Name, opt)
		return "", false
	}
	return args[*i], true
}
