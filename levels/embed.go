// Package levels holds scenario files: an arena configuration, the terrain,
// the actors standing in it and the launches to fire.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// LoadScenarioFromFS loads an embedded scenario. The .yaml suffix is optional.
func LoadScenarioFromFS(name string) (*Scenario, error) {
	if !strings.HasSuffix(name, ".yaml") {
		name += ".yaml"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return ParseScenario(name, data)
}

// LoadScenarioFile loads a scenario from disk.
func LoadScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return ParseScenario(path, data)
}

func ParseScenario(name string, data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(name, ".yaml")
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &sc, nil
}

// Names lists the embedded scenarios without their suffix.
func Names() ([]string, error) {
	matches, err := fs.Glob(LevelsFS, "*.yaml")
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = strings.TrimSuffix(m, ".yaml")
	}
	return matches, nil
}
