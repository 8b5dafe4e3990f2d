// Package diff computes schema-evolution findings between two revisions
// of a schema document and classifies each change as breaking or
// non-breaking.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sparkbrains-DE/dbt-vc/pkg/schema"
)

// Kind identifies the type of a change finding.
type Kind string

// Finding kinds. Model and column removals are breaking; additions are not.
const (
	ModelAdded     Kind = "model-added"
	ModelRemoved   Kind = "model-removed"
	ColumnsAdded   Kind = "columns-added"
	ColumnsRemoved Kind = "columns-removed"
)

// Finding is one classified schema change. It carries enough structure to
// render a message without re-deriving anything from the documents.
type Finding struct {
	Kind    Kind     `json:"kind"`
	Model   string   `json:"model"`
	Columns []string `json:"columns,omitempty"` // sorted; empty for model-level findings
}

// Describe renders the finding as a human-readable message.
func (f Finding) Describe() string {
	switch f.Kind {
	case ModelAdded:
		return fmt.Sprintf("New model: %s", f.Model)
	case ModelRemoved:
		return fmt.Sprintf("Model '%s' was removed", f.Model)
	case ColumnsAdded:
		return fmt.Sprintf("Model '%s' added columns: %s", f.Model, strings.Join(f.Columns, ", "))
	case ColumnsRemoved:
		return fmt.Sprintf("Model '%s' removed columns: %s", f.Model, strings.Join(f.Columns, ", "))
	default:
		return string(f.Kind)
	}
}

// ChangeSet aggregates the findings from one old/new document pair.
type ChangeSet struct {
	Breaking    []Finding `json:"breaking,omitempty"`
	NonBreaking []Finding `json:"non_breaking,omitempty"`
}

// Empty reports whether the change set contains no findings.
func (c ChangeSet) Empty() bool {
	return len(c.Breaking) == 0 && len(c.NonBreaking) == 0
}

// Diff compares two revisions of the same schema document. Models are
// visited in lexicographic name order and, within a model, removals are
// emitted before additions, so output is reproducible across runs.
//
// An old document with zero models short-circuits to an empty change set:
// a file absent from the prior revision is a new file, never a mass
// removal. Column renames are not detected; a rename surfaces as one
// removed plus one added column.
func Diff(oldDoc, newDoc *schema.Document) ChangeSet {
	var cs ChangeSet
	if oldDoc == nil || len(oldDoc.Models) == 0 {
		return cs
	}
	if newDoc == nil {
		newDoc = &schema.Document{}
	}

	oldModels := oldDoc.ModelsByName()
	newModels := newDoc.ModelsByName()

	for _, name := range unionNames(oldModels, newModels) {
		oldModel, inOld := oldModels[name]
		newModel, inNew := newModels[name]

		switch {
		case !inOld:
			cs.NonBreaking = append(cs.NonBreaking, Finding{Kind: ModelAdded, Model: name})
		case !inNew:
			cs.Breaking = append(cs.Breaking, Finding{Kind: ModelRemoved, Model: name})
		default:
			oldCols := oldModel.ColumnNames()
			newCols := newModel.ColumnNames()
			if removed := subtract(oldCols, newCols); len(removed) > 0 {
				cs.Breaking = append(cs.Breaking, Finding{Kind: ColumnsRemoved, Model: name, Columns: removed})
			}
			if added := subtract(newCols, oldCols); len(added) > 0 {
				cs.NonBreaking = append(cs.NonBreaking, Finding{Kind: ColumnsAdded, Model: name, Columns: added})
			}
		}
	}

	return cs
}

func unionNames(a, b map[string]schema.Model) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var names []string
	for name := range a {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range b {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// subtract returns the sorted set difference a - b.
func subtract(a, b map[string]bool) []string {
	var out []string
	for name := range a {
		if !b[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
