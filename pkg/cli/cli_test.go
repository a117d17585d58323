package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(BuildInfo{Version: "test", Commit: "none", BuildDate: "now"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const orderPattern = `
pattern:
  status: { $or: [placed, shipped] }
  items: { $array: { sku: { $select: skus } } }
`

func TestEvalMatches(t *testing.T) {
	patternPath := writeTempFile(t, "order.yaml", orderPattern)
	inputPath := writeTempFile(t, "order.json",
		`{"status":"shipped","items":[{"sku":"a-1"},{"sku":"b-2"}]}`)

	out, err := runCLI(t, "", "eval", "--pattern", patternPath, inputPath)
	require.NoError(t, err)

	var result struct {
		Matched    bool           `json:"matched"`
		Selections map[string]any `json:"selections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Matched)
	assert.Equal(t, []any{"a-1", "b-2"}, result.Selections["skus"])
}

func TestEvalReadsStdin(t *testing.T) {
	patternPath := writeTempFile(t, "p.yaml", "pattern: { ok: true }")

	out, err := runCLI(t, `{"ok": true}`, "eval", "-p", patternPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"matched":true`)
}

func TestEvalMismatchIsNotAnError(t *testing.T) {
	patternPath := writeTempFile(t, "p.yaml", "pattern: { ok: true }")

	out, err := runCLI(t, `{"ok": false}`, "eval", "-p", patternPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"matched":false`)
}

func TestEvalStrict(t *testing.T) {
	patternPath := writeTempFile(t, "p.yaml", "pattern: { ok: true }")

	_, err := runCLI(t, `{"ok": false}`, "eval", "-p", patternPath, "--strict")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestEvalInvalidInput(t *testing.T) {
	patternPath := writeTempFile(t, "p.yaml", "pattern: { ok: true }")

	_, err := runCLI(t, `{not json`, "eval", "-p", patternPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON input")
}

func TestCheckValidDocument(t *testing.T) {
	patternPath := writeTempFile(t, "order.yaml", orderPattern)

	out, err := runCLI(t, "", "check", patternPath)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (selects skus)")
}

func TestCheckInvalidDocument(t *testing.T) {
	patternPath := writeTempFile(t, "bad.yaml", "pattern: { $type: decimal }")

	_, err := runCLI(t, "", "check", patternPath)
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	patternPath := writeTempFile(t, "order.yaml", `
pattern:
  a: { $select: first }
  b: { $select: second }
`)

	out, err := runCLI(t, "", "keys", patternPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, strings.Fields(out))
}

func TestKeysJSON(t *testing.T) {
	patternPath := writeTempFile(t, "p.yaml", "pattern: { a: { $select: only } }")

	out, err := runCLI(t, "", "keys", patternPath, "--json")
	require.NoError(t, err)

	var keys []string
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	assert.Equal(t, []string{"only"}, keys)
}
