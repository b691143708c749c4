package scan

import (
	"fmt"
	"io"
)

// PrintUsage writes help for the command to the given writer.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: "+Name+" [OPTION]... [-] [NAME=VALUE]... [COMMAND [ARG]...]")
	fmt.Fprintln(w, "Set each NAME to VALUE in the environment and run COMMAND.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --ignore-environment  start with an empty environment")
	fmt.Fprintln(w, "  -0, --null                end each output line with a 0 byte rather than a")
	fmt.Fprintln(w, "                            newline (only valid when printing the environment)")
	fmt.Fprintln(w, "  -f, --file FILE           read and set variables from FILE; \"-\" means")
	fmt.Fprintln(w, "                            standard input")
	fmt.Fprintln(w, "  -u, --unset NAME          remove variable NAME from the environment")
	fmt.Fprintln(w, "  -S, --split-string STR    split STR into separate arguments; used to pass")
	fmt.Fprintln(w, "                            multiple arguments on shebang lines")
	fmt.Fprintln(w, "      --help                show this help and exit")
	fmt.Fprintln(w, "      --version             show version information and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A mere - implies -i. If no COMMAND, print the resulting environment.")
}
