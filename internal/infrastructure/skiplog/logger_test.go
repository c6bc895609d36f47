package skiplog

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryPattern = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] (.+?) - (.+)$`)

func TestLog(t *testing.T) {
	t.Run("creates the log file and writes a timestamped entry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "skipped_large_files.txt")
		logger := New(path)

		err := logger.Log("huge.xml", "Too many UPCs (~1,200,001 > 1,000,000 limit)")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		require.Len(t, lines, 1)

		match := entryPattern.FindStringSubmatch(lines[0])
		require.NotNil(t, match, "line %q does not match the entry format", lines[0])
		assert.Equal(t, "huge.xml", match[1])
		assert.Equal(t, "Too many UPCs (~1,200,001 > 1,000,000 limit)", match[2])
	})

	t.Run("appends across logger instances", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "skipped_large_files.txt")

		require.NoError(t, New(path).Log("first.xml", "XML parse error: unexpected EOF"))
		require.NoError(t, New(path).Log("second.xml", "Too many rows (2,000,000 > Excel max 1,048,576)"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "first.xml")
		assert.Contains(t, lines[1], "second.xml")
	})

	t.Run("fails when the parent directory does not exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "skipped_large_files.txt")
		logger := New(path)

		err := logger.Log("any.xml", "reason")
		assert.Error(t, err)
	})
}

func TestPath(t *testing.T) {
	logger := New("/srv/lenscat/skipped_large_files.txt")
	assert.Equal(t, "/srv/lenscat/skipped_large_files.txt", logger.Path())
}
