package trace

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Version is the trace document version this package reads.
const Version = 1

var (
	ErrInvalidTrace       = errors.New("invalid trace")
	ErrUnsupportedVersion = errors.New("unsupported trace version")
)

//go:embed schema.json
var schemaJSON []byte

// Format is the encoding of a trace document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Trace is a full capture of a UI transition.
type Trace struct {
	Version int                   `json:"version"`
	Name    string                `json:"name,omitempty"`
	Windows []*WindowManagerState `json:"windows,omitempty"`
	Layers  []*LayerState         `json:"layers,omitempty"`
	Events  []FocusEvent          `json:"events,omitempty"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unknown trace extension %q", ErrInvalidTrace, filepath.Ext(path))
	}
}

// IsTraceFile reports whether path has a trace file extension.
func IsTraceFile(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}

// Load reads and validates a trace file.
func Load(path string) (*Trace, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}

	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

// Parse decodes and validates a trace document.
func Parse(data []byte, format Format) (*Trace, error) {
	if format == FormatYAML {
		var err error
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, err
		}
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidTrace)
	}

	version := gjson.GetBytes(data, "version")
	if !version.Exists() {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidTrace)
	}
	if version.Int() != Version {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version.Raw)
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	var t Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTrace, err)
	}
	return &t, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTrace, err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTrace, err)
	}
	return out, nil
}

func validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTrace, err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidTrace, strings.Join(problems, "; "))
}
