// Package source loads the text handed to the tokenizer.
package source

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the path argument that selects standard input.
const Stdin = "-"

// Read returns the full contents of path. An empty path or Stdin reads
// everything from stdin instead.
func Read(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open '%s' for reading: %w", path, err)
	}
	return data, nil
}
