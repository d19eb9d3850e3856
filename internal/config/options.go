// Package config loads the engine's single recognized options object: an
// ordered list of purity entries the oracle consults at decision step 4.
// Loading is YAML-first, with JSON accepted as well since it's a
// strict subset of YAML 1.2's flow style — adapted from the host
// toolchain's gopkg.in/yaml.v3 configuration habit rather than hand-rolling
// a bespoke format.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sidefxlint/sidefxlint/internal/purity"
)

// Options is the root configuration document.
type Options struct {
	NoSideEffectsWhenCalled []purity.Entry `yaml:"noSideEffectsWhenCalled" json:"noSideEffectsWhenCalled"`
}

// Load reads and parses the options document at path. A missing file is not
// an error: callers get an empty Options, so a project with no config still
// runs against the static allow-list and inline markers alone.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a configuration document's bytes. yaml.v3 parses JSON
// documents too (JSON is valid YAML flow style), so one path serves both
// `.yml`/`.yaml` and `.json` config files.
func Parse(data []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("config: parsing options: %w", err)
	}
	return opts, nil
}

// Oracle builds a purity.Oracle from the loaded entries.
func (o Options) Oracle() *purity.Oracle {
	return purity.NewOracle(o.NoSideEffectsWhenCalled)
}
