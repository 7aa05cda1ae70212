// Package params loads and validates the tuning file for the Worley cave
// carver.
package params

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/worleycaves/pkg/world/caves"
)

//go:embed defaults.yaml
var defaultsYAML []byte

//go:embed schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("params.schema.json", schemaJSON)

// Settings is the parameters file. Fields missing from a file keep their
// default value.
type Settings struct {
	Cutoff                float64 `yaml:"noise_cutoff"`
	WarpAmplifier         float64 `yaml:"warp_amplifier"`
	EaseInDepth           float64 `yaml:"ease_in_depth"`
	VerticalCompression   float64 `yaml:"vertical_compression"`
	HorizontalCompression float64 `yaml:"horizontal_compression"`
	LavaDepth             int     `yaml:"lava_depth"`
	BlacklistedDimensions []int   `yaml:"blacklisted_dimensions"`
}

// Default returns the embedded default settings.
func Default() *Settings {
	s := &Settings{}
	if err := yaml.Unmarshal(defaultsYAML, s); err != nil {
		panic(fmt.Sprintf("parsing embedded defaults: %v", err))
	}
	return s
}

// Parse validates data against the parameters schema and overlays it on the
// defaults.
func Parse(data []byte) (*Settings, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing params: %w", err)
	}
	return s, nil
}

// Validate checks a YAML or JSON parameters document against the schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing params: %w", err)
	}
	if doc == nil {
		return nil
	}

	// The validator expects values as encoding/json produces them.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding params: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decoding params: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("validating params: %w", err)
	}
	return nil
}

// Load reads settings from path. An empty path returns the defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading params file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Caves returns the carver parameters.
func (s *Settings) Caves() caves.Params {
	return caves.Params{
		Cutoff:                s.Cutoff,
		WarpAmplitude:         s.WarpAmplifier,
		EaseInDepth:           s.EaseInDepth,
		VerticalCompression:   s.VerticalCompression,
		HorizontalCompression: s.HorizontalCompression,
		LavaDepth:             s.LavaDepth,
	}
}

