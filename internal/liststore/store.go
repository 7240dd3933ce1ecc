package liststore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source says which package universe a list belongs to: the official
// repositories or the AUR. The string value doubles as the file name prefix.
type Source string

const (
	SourceOfficial Source = "pacman"
	SourceForeign  Source = "aur"
)

// Sources returns both sources in a fixed order.
func Sources() []Source {
	return []Source{SourceOfficial, SourceForeign}
}

// ScopeCommon is the sentinel scope whose list applies to every machine.
const ScopeCommon = "common"

// ListRef identifies one list file.
type ListRef struct {
	Source Source
	Scope  string
}

// Store holds the per-source, per-scope package lists as files named
// {source}-{scope}.pkgs inside a single directory. Lines starting with '#'
// and blank lines carry no set semantics but survive mutations verbatim;
// member lines are kept sorted and deduplicated on every write.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created lazily on the
// first mutation.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the backing file path for a list.
func (s *Store) Path(source Source, scope string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s.pkgs", source, scope))
}

// Load returns the member names of a list, sorted. A missing file is an
// empty list, not an error.
func (s *Store) Load(source Source, scope string) ([]string, error) {
	lines, err := s.readLines(source, scope)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for _, l := range lines {
		if name, ok := memberName(l); ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Contains reports whether name is a member of the list.
func (s *Store) Contains(source Source, scope, name string) (bool, error) {
	names, err := s.Load(source, scope)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Add inserts name into the list and rewrites the file normalized. Adding a
// name that is already present changes nothing and reports changed=false.
func (s *Store) Add(source Source, scope, name string) (bool, error) {
	lines, err := s.readLines(source, scope)
	if err != nil {
		return false, err
	}
	for _, l := range lines {
		if n, ok := memberName(l); ok && n == name {
			return false, nil
		}
	}
	lines = append(lines, name)
	if err := s.writeLines(source, scope, lines); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the exact-match member line and rewrites the file
// normalized. Removing an absent name changes nothing.
func (s *Store) Remove(source Source, scope, name string) (bool, error) {
	lines, err := s.readLines(source, scope)
	if err != nil {
		return false, err
	}
	found := false
	kept := lines[:0]
	for _, l := range lines {
		if n, ok := memberName(l); ok && n == name {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return false, nil
	}
	if err := s.writeLines(source, scope, kept); err != nil {
		return false, err
	}
	return true, nil
}

// AllLists enumerates every list file present in the store directory. A
// missing directory is an empty store. Files that do not match the
// {source}-{scope}.pkgs naming are ignored.
func (s *Store) AllLists() ([]ListRef, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading list dir %s: %w", s.dir, err)
	}
	var refs []ListRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ref, ok := parseListName(e.Name())
		if !ok {
			continue
		}
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Source != refs[j].Source {
			return refs[i].Source < refs[j].Source
		}
		return refs[i].Scope < refs[j].Scope
	})
	return refs, nil
}

func parseListName(name string) (ListRef, bool) {
	base, ok := strings.CutSuffix(name, ".pkgs")
	if !ok {
		return ListRef{}, false
	}
	for _, src := range Sources() {
		if scope, ok := strings.CutPrefix(base, string(src)+"-"); ok && scope != "" {
			return ListRef{Source: src, Scope: scope}, true
		}
	}
	return ListRef{}, false
}

func memberName(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if t == "" || strings.HasPrefix(t, "#") {
		return "", false
	}
	return t, true
}

func (s *Store) readLines(source Source, scope string) ([]string, error) {
	path := s.Path(source, scope)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")
	// Drop the empty tail produced by the trailing newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// writeLines rewrites the file with member names sorted and deduplicated.
// Comment and blank lines keep their original positions: the i-th member
// slot in the file receives the i-th name in sorted order, surplus names are
// appended, and surplus slots are dropped.
func (s *Store) writeLines(source Source, scope string, lines []string) error {
	seen := make(map[string]bool)
	var names []string
	for _, l := range lines {
		if n, ok := memberName(l); ok && !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	next := 0
	for _, l := range lines {
		if _, ok := memberName(l); ok {
			if next < len(names) {
				b.WriteString(names[next])
				b.WriteString("\n")
				next++
			}
			continue
		}
		b.WriteString(l)
		b.WriteString("\n")
	}
	for ; next < len(names); next++ {
		b.WriteString(names[next])
		b.WriteString("\n")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.dir, err)
	}
	path := s.Path(source, scope)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
