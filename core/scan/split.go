package scan

import "strings"

// Split breaks s into its whitespace-delimited tokens. There is no quote
// or escape handling; any run of whitespace separates tokens. An empty or
// all-whitespace string yields no tokens.
func Split(s string) []string {
	return strings.Fields(s)
}
