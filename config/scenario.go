package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrBadAreas indicates an area state list that is not a comma-separated
// list of integers.
var ErrBadAreas = errors.New("config: malformed area list")

// Scenario is one run's input: the 12 area states in declaration order and
// the flooding level. Range checks happen in the engine.
//
// YAML form:
//
//	areas: [0, 0, 2, 1, 0, 1, 1, 0, 0, 2, 0, 1]
//	flooding: 2
type Scenario struct {
	Areas    []int `yaml:"areas"`
	Flooding int   `yaml:"flooding"`
}

// LoadScenario reads a Scenario from a YAML file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.Wrapf(err, "config: reading scenario %s", path)
	}

	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario document.
func ParseScenario(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, errors.Wrap(err, "config: parsing scenario YAML")
	}

	return s, nil
}

// ParseAreas splits "0,0,2,1,..." into integers. Whitespace around entries
// is ignored; the count is not checked here.
func ParseAreas(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadAreas)
	}

	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q", ErrBadAreas, i+1, part)
		}
		out[i] = v
	}

	return out, nil
}

// FormatAreas is the inverse of ParseAreas.
func FormatAreas(areas []int) string {
	parts := make([]string, len(areas))
	for i, v := range areas {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
