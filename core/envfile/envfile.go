// Package envfile loads environment variables from sectioned key=value
// files, the format accepted by env's --file option.
package envfile

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// Stdin is the path sentinel meaning "read from standard input".
const Stdin = "-"

// Pair is a single key/value entry read from a file.
type Pair struct {
	Name  string
	Value string
}

// Load reads the file at path from fsys and returns its key/value pairs in
// encounter order. Section headers only group entries; their names are
// ignored and every section's pairs are returned. When path is Stdin the
// content is read from stdin instead of fsys.
func Load(fsys afero.Fs, stdin io.Reader, path string) ([]Pair, error) {
	var data []byte
	var err error
	if path == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = afero.ReadFile(fsys, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	var pairs []Pair
	for _, section := range file.Sections() {
		for _, key := range section.Keys() {
			pairs = append(pairs, Pair{Name: key.Name(), Value: key.Value()})
		}
	}
	return pairs, nil
}
