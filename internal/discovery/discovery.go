// Package discovery locates schema documents and SQL model files in a
// dbt project tree.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SchemaPaths returns every .yml/.yaml file under modelsDir, sorted. A
// missing or unreadable directory yields no paths; discovery failures are
// the validator's concern (an undiscovered project simply has nothing to
// validate).
func SchemaPaths(modelsDir string) []string {
	var paths []string
	_ = filepath.Walk(modelsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yml", ".yaml":
			paths = append(paths, path)
		}
		return nil
	})
	sort.Strings(paths)
	return paths
}

// ModelNames returns the set of model names implied by .sql file
// basenames under modelsDir. A model is "implemented" when its SQL file
// exists, whether or not any schema document mentions it.
func ModelNames(modelsDir string) map[string]bool {
	names := make(map[string]bool)
	_ = filepath.Walk(modelsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".sql") {
			names[strings.TrimSuffix(info.Name(), filepath.Ext(path))] = true
		}
		return nil
	})
	return names
}
