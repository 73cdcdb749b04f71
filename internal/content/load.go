package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// ErrEmptyCatalog is returned when a catalog has no cards at all.
var ErrEmptyCatalog = errors.New("catalog has no cards")

// Catalog holds the ordered records of every carousel.
type Catalog struct {
	Activities []Stat    `yaml:"activities"`
	Projects   []Project `yaml:"projects"`
	Steps      []Step    `yaml:"steps"`
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Activities)+len(c.Projects)+len(c.Steps) == 0 {
		return ErrEmptyCatalog
	}
	for i, s := range c.Activities {
		if s.Name() == "" {
			return fmt.Errorf("activity %d: label or caption required", i+1)
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("project %d: title required", i+1)
		}
		switch p.TextPosition {
		case "", TextTop, TextBottom:
		default:
			return fmt.Errorf("project %d: invalid text_position %q", i+1, p.TextPosition)
		}
	}
	for i, s := range c.Steps {
		if s.Title == "" {
			return fmt.Errorf("step %d: title required", i+1)
		}
	}
	return nil
}

// Records returns the records of one family, in catalog order.
func (c *Catalog) Records(kind Kind) []Record {
	var out []Record
	switch kind {
	case KindStat:
		out = make([]Record, 0, len(c.Activities))
		for _, s := range c.Activities {
			out = append(out, s)
		}
	case KindProject:
		out = make([]Record, 0, len(c.Projects))
		for _, p := range c.Projects {
			out = append(out, p)
		}
	case KindStep:
		out = make([]Record, 0, len(c.Steps))
		for i, s := range c.Steps {
			if s.Number == 0 {
				s.Number = i + 1
			}
			out = append(out, s)
		}
	}
	return out
}
