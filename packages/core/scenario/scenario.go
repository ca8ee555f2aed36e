package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/flicker/packages/assertions"
	"github.com/abdul-hamid-achik/flicker/packages/flicker"
	"github.com/abdul-hamid-achik/flicker/packages/geometry"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownHelper   = errors.New("unknown helper")
	ErrInvalidScenario = errors.New("invalid scenario")
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Name          string             `yaml:"name"`
	Description   string             `yaml:"description,omitempty"`
	Trace         string             `yaml:"trace,omitempty"`
	BeginRotation geometry.Rotation  `yaml:"beginRotation"`
	EndRotation   *geometry.Rotation `yaml:"endRotation,omitempty"`
	Assertions    []Entry            `yaml:"assertions"`

	// Setup commands run before the trace is loaded, e.g. to pull it from a
	// device. Teardown commands run afterwards, even when setup fails.
	Setup    []string `yaml:"setup,omitempty"`
	Teardown []string `yaml:"teardown,omitempty"`

	// Path is the file the scenario was read from.
	Path string `yaml:"-"`
}

// Entry is one helper invocation.
type Entry struct {
	Helper        string             `yaml:"helper"`
	BugID         int                `yaml:"bugId,omitempty"`
	Enabled       *bool              `yaml:"enabled,omitempty"`
	BeginRotation *geometry.Rotation `yaml:"beginRotation,omitempty"`
	EndRotation   *geometry.Rotation `yaml:"endRotation,omitempty"`
	AllStates     *bool              `yaml:"allStates,omitempty"`
	Windows       []string           `yaml:"windows,omitempty"`
}

// IsScenarioFile reports whether path looks like a scenario file.
func IsScenarioFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	return strings.HasSuffix(base, ".flicker.yaml") || strings.HasSuffix(base, ".flicker.yml")
}

// ParseFile reads a scenario file.
func ParseFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.Path = path
	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(strings.TrimSuffix(base, filepath.Ext(base)), ".flicker")
	}
	return sc, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	if len(sc.Assertions) == 0 {
		return nil, fmt.Errorf("%w: no assertions", ErrInvalidScenario)
	}
	for i, e := range sc.Assertions {
		if e.Helper == "" {
			return nil, fmt.Errorf("%w: assertion %d has no helper", ErrInvalidScenario, i)
		}
		if _, ok := lookup(e.Helper); !ok {
			return nil, fmt.Errorf("%w: assertion %d: %q", ErrUnknownHelper, i, e.Helper)
		}
	}
	return &sc, nil
}

// TracePath returns the trace file named by the scenario, relative to the
// scenario file. It is empty when the scenario names no trace.
func (sc *Scenario) TracePath() string {
	if sc.Trace == "" || filepath.IsAbs(sc.Trace) || sc.Path == "" {
		return sc.Trace
	}
	return filepath.Join(filepath.Dir(sc.Path), sc.Trace)
}

// Apply registers every assertion of the scenario on suite.
func (sc *Scenario) Apply(suite *assertions.Suite, m geometry.Metrics) error {
	for i, e := range sc.Assertions {
		h, ok := lookup(e.Helper)
		if !ok {
			return fmt.Errorf("%w: assertion %d: %q", ErrUnknownHelper, i, e.Helper)
		}
		h.register(suite, m, sc.invocation(e))
	}
	return nil
}

func (sc *Scenario) invocation(e Entry) invocation {
	inv := invocation{
		begin:     sc.BeginRotation,
		allStates: true,
		windows:   e.Windows,
	}
	if e.BeginRotation != nil {
		inv.begin = *e.BeginRotation
	}

	switch {
	case e.EndRotation != nil:
		inv.end = *e.EndRotation
	case e.BeginRotation == nil && sc.EndRotation != nil:
		inv.end = *sc.EndRotation
	default:
		inv.end = inv.begin
	}

	if e.AllStates != nil {
		inv.allStates = *e.AllStates
	}

	if e.BugID != 0 {
		inv.opts = append(inv.opts, flicker.BugID(e.BugID))
	}
	if e.Enabled != nil {
		inv.opts = append(inv.opts, flicker.Enabled(*e.Enabled))
	}
	return inv
}
