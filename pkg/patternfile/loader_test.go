package patternfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structmatch/structmatch/pkg/pattern"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeFile(t, "doc.yaml", `
pattern:
  status: { $or: [active, trial] }
  user:
    name: { $select: userName }
`)

	p, err := LoadFromFile(path)
	require.NoError(t, err)

	res := pattern.Match(p, map[string]any{
		"status": "active",
		"user":   map[string]any{"name": "ada"},
	})
	require.True(t, res.Matched)
	name, _ := res.Selections.Get("userName")
	assert.Equal(t, "ada", name)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeFile(t, "doc.json", `{
  "pattern": { "count": { "$gte": 3 } }
}`)

	p, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, pattern.Test(p, map[string]any{"count": float64(5)}))
	assert.False(t, pattern.Test(p, map[string]any{"count": float64(2)}))
}

func TestLoadFromFileYAMLIntegerLiterals(t *testing.T) {
	// YAML decodes 3 as int; decoded JSON input carries float64. The
	// loader normalizes so the two still compare equal.
	path := writeFile(t, "doc.yml", "pattern: { count: 3 }")

	p, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, pattern.Test(p, map[string]any{"count": float64(3)}))
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := LoadFromFile(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "empty.yaml", ""))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "bad.yaml", "pattern: [unclosed"))
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "bad.json", "{"))
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("missing pattern key", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "nopattern.json", `{"other": 1}`))
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "badop.yaml", "pattern: { $type: decimal }"))
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})
}
