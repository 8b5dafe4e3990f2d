package lint

import (
	"sort"

	"github.com/sparkbrains-DE/dbt-vc/pkg/schema"
)

// Context provides all data needed for one validation pass: every parsed
// schema document keyed by its project-relative path, plus the set of
// model names discovered from SQL files. Documents are read-only
// snapshots; the context is discarded after the pass.
type Context struct {
	docs        map[string]*schema.Document
	implemented map[string]bool
}

// NewContext creates a validation context. A nil document map or
// implemented set is treated as empty.
func NewContext(docs map[string]*schema.Document, implemented map[string]bool) *Context {
	if docs == nil {
		docs = make(map[string]*schema.Document)
	}
	if implemented == nil {
		implemented = make(map[string]bool)
	}
	return &Context{docs: docs, implemented: implemented}
}

// Paths returns the document paths in sorted order. Rules iterate paths
// through this accessor so discovery order is reproducible.
func (c *Context) Paths() []string {
	paths := make([]string, 0, len(c.docs))
	for p := range c.docs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Document returns the parsed document for a path.
func (c *Context) Document(path string) *schema.Document {
	return c.docs[path]
}

// ImplementedModels returns the sorted names of models that exist as SQL
// files, whether or not they appear in any schema document.
func (c *Context) ImplementedModels() []string {
	names := make([]string, 0, len(c.implemented))
	for n := range c.implemented {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DocumentedModels returns the set of model names declared across all
// schema documents.
func (c *Context) DocumentedModels() map[string]bool {
	documented := make(map[string]bool)
	for _, doc := range c.docs {
		for _, m := range doc.Models {
			documented[m.Name] = true
		}
	}
	return documented
}
