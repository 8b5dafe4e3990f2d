// Package schema provides the in-memory representation of dbt schema
// documents: models, columns, descriptions, tags, and declared tests,
// parsed from YAML.
package schema

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a single parsed schema file. A document is constructed
// fresh per parse and never mutated afterwards.
type Document struct {
	Models []Model `yaml:"models"`
}

// Model describes one model declared in a schema document.
type Model struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Columns     []Column `yaml:"columns"`
}

// Column describes one column of a model.
type Column struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Tests       []TestSpec `yaml:"tests"`
}

// TestSpec is a single declared test. dbt allows two shapes: a bare test
// name ("unique") or a mapping from test name to parameters
// (accepted_values: {values: [...]}). Parameters are not interpreted
// here; only the test-kind names matter.
type TestSpec struct {
	name   string
	params map[string]any
}

// UnmarshalYAML decodes either test shape. Other node kinds decode to an
// empty spec so a stray entry does not fail the whole document.
func (t *TestSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&t.name)
	case yaml.MappingNode:
		return node.Decode(&t.params)
	}
	return nil
}

// Kinds returns the test-kind names carried by this spec. For the
// parameterized shape the keys are sorted for deterministic iteration.
func (t TestSpec) Kinds() []string {
	if t.name != "" {
		return []string{t.name}
	}
	kinds := make([]string, 0, len(t.params))
	for k := range t.params {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Parse decodes raw YAML into a Document. Malformed or empty input yields
// an empty document: scanning must continue over the rest of the project,
// so parse failures are swallowed rather than propagated. Callers that
// care can log the degradation separately.
func Parse(raw []byte) *Document {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return &Document{}
	}
	return &doc
}

// ModelsByName indexes the document's models by name.
func (d *Document) ModelsByName() map[string]Model {
	byName := make(map[string]Model, len(d.Models))
	for _, m := range d.Models {
		byName[m.Name] = m
	}
	return byName
}

// DescriptionText returns the model description with surrounding
// whitespace trimmed; an empty result means "undescribed".
func (m Model) DescriptionText() string {
	return strings.TrimSpace(m.Description)
}

// ColumnNames returns the set of column names declared on the model.
func (m Model) ColumnNames() map[string]bool {
	names := make(map[string]bool, len(m.Columns))
	for _, c := range m.Columns {
		names[c.Name] = true
	}
	return names
}

// DescriptionText returns the column description with surrounding
// whitespace trimmed.
func (c Column) DescriptionText() string {
	return strings.TrimSpace(c.Description)
}

// TestKinds returns the set of test-kind names attached to the column,
// reading bare-name tests directly and parameterized tests by their keys.
func (c Column) TestKinds() map[string]bool {
	kinds := make(map[string]bool)
	for _, t := range c.Tests {
		for _, k := range t.Kinds() {
			kinds[k] = true
		}
	}
	return kinds
}
