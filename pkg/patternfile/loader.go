package patternfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors for pattern document loading.
var (
	ErrFileNotFound     = errors.New("pattern file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidJSON      = errors.New("invalid JSON syntax")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("pattern file is empty")
)

// Format identifies a document encoding.
type Format string

// Supported document encodings.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is a parsed, not yet compiled pattern document.
type Document struct {
	// Pattern is the decoded pattern node, normalized to JSON types.
	Pattern any `json:"pattern" yaml:"pattern"`
}

// Compile validates the document against the embedded schema and
// translates it into a runtime pattern.
func (d *Document) Compile() (any, error) {
	if err := ValidateDocument(map[string]any{"pattern": d.Pattern}); err != nil {
		return nil, err
	}
	return CompileNode(d.Pattern)
}

// Parse decodes a pattern document from data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}
	node, ok := raw["pattern"]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrInvalidDocument, "pattern")
	}
	return &Document{Pattern: normalize(node)}, nil
}

// LoadFromFile reads, validates, and compiles a pattern document. The
// format is detected from the file extension (.yaml/.yml for YAML,
// otherwise JSON).
func LoadFromFile(path string) (any, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	compiled, err := doc.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return compiled, nil
}

// ReadFile reads and parses a pattern document without compiling it.
func ReadFile(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	return Parse(data, formatForPath(path))
}

func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// normalize rewrites YAML-decoded values into the types a JSON decoder
// produces, so schema validation and literal matching behave identically
// for both encodings. Integers become float64, which is also what
// decoded input data carries.
func normalize(node any) any {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			n[k] = normalize(v)
		}
		return n
	case []any:
		for i, v := range n {
			n[i] = normalize(v)
		}
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return node
	}
}
