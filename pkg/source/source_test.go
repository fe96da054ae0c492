package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.c")
	require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0644))

	data, err := Read(path, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(data))
}

func TestReadStdin(t *testing.T) {
	for _, path := range []string{"", Stdin} {
		data, err := Read(path, strings.NewReader("a = b;"))
		require.NoError(t, err)
		assert.Equal(t, "a = b;", string(data))
	}
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.c")

	_, err := Read(path, strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "could not open '"+path+"' for reading")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReadStdinError(t *testing.T) {
	_, err := Read(Stdin, failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
