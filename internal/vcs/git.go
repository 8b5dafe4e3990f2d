// Package vcs reads schema file content from a git working tree and its
// history. Every lookup degrades to "no data" on failure: a missing
// revision or unreadable path must not block scanning the rest of the
// project.
package vcs

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repo provides read access to the git repository containing a project.
type Repo struct {
	dir string
}

// Open returns a Repo rooted at dir. No validation is performed; lookups
// against a non-repository simply return no data.
func Open(dir string) *Repo {
	return &Repo{dir: dir}
}

// ChangedPaths returns repository-relative paths changed between baseRef
// and HEAD. Returns nil on any underlying git failure (unknown ref, not a
// repository, git missing from PATH).
func (r *Repo) ChangedPaths(baseRef string) []string {
	// Refs sourced from command output may carry stray whitespace.
	out, err := r.git("diff", "--name-only", strings.TrimSpace(baseRef)+"...HEAD")
	if err != nil {
		return nil
	}

	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

// ShowFile returns the content of a repository-relative path as of the
// given revision, or "" when the path did not exist at that revision or
// the revision cannot be resolved.
func (r *Repo) ShowFile(path, ref string) string {
	out, err := r.git("show", strings.TrimSpace(ref)+":"+path)
	if err != nil {
		return ""
	}
	return out
}

// ReadWorkingFile returns the current working-tree content of a
// repository-relative path, or "" if the file is unreadable.
func (r *Repo) ReadWorkingFile(path string) string {
	data, err := os.ReadFile(filepath.Join(r.dir, path))
	if err != nil {
		return ""
	}
	return string(data)
}

func (r *Repo) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	out, err := cmd.Output()
	return string(out), err
}
