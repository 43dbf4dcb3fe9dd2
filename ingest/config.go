package ingest

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openaps/glucose-predict/predict"
)

// LoadConfig reads and parses a YAML predict.Config file. Uses strict
// parsing: unrecognized keys (typos) are rejected, matching the
// teacher's LoadPolicyBundle.
func LoadConfig(path string) (predict.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return predict.Config{}, fmt.Errorf("reading predict config: %w", err)
	}
	cfg := predict.DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return predict.Config{}, fmt.Errorf("parsing predict config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return predict.Config{}, fmt.Errorf("invalid predict config: %w", err)
	}
	return cfg, nil
}
