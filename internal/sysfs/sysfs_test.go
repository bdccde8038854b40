package sysfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRange(t *testing.T) {
	n, err := ReadRange(writeFile(t, "0-3\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = ReadRange(writeFile(t, "  2-2  \n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReadRange_Malformed(t *testing.T) {
	for _, content := range []string{"", "4", "a-b", "3-1", "0-3-5x"} {
		_, err := ReadRange(writeFile(t, content))
		assert.Error(t, err, "content %q", content)
	}
}

func TestReadRange_MissingFile(t *testing.T) {
	_, err := ReadRange(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadInteger(t *testing.T) {
	v, err := ReadInteger(writeFile(t, "17\n"))
	require.NoError(t, err)
	assert.Equal(t, 17, v)

	v, err = ReadInteger(writeFile(t, " 0 "))
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestReadInteger_Malformed(t *testing.T) {
	for _, content := range []string{"", "abc", "-1", "1 2"} {
		_, err := ReadInteger(writeFile(t, content))
		assert.Error(t, err, "content %q", content)
	}
}
