// Package profile loads fill profiles: YAML documents carrying decisions
// a consumer wants applied to a snippet before or instead of an
// interactive session: variable overrides, placeholder answers and
// choice selections, the latter two keyed by tab number.
//
// A profile is consumer-side policy. The snippet model itself stays free
// of any serialization format; profiles only describe how to mutate an
// already-assembled snippet.
package profile

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-snippet/pkg/model"
)

// Profile holds pre-commit decisions for one snippet session.
type Profile struct {
	// Variables overrides variable resolution by name. An override is
	// installed as the variable's resolver, so it survives any number of
	// evaluation passes.
	Variables map[string]string `yaml:"variables"`

	// Answers fills placeholder tab stops by tab number.
	Answers map[int]string `yaml:"answers"`

	// Selections commits choice tab stops by tab number. An out-of-range
	// index leaves the choice rendering empty, same as any other
	// unresolved selection.
	Selections map[int]int `yaml:"selections"`
}

// Parse decodes a single YAML profile document.
func Parse(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("profile: parse document: %w", err)
	}
	return p, nil
}

// Apply mutates the snippet's shared nodes in place according to the
// profile. Tab numbers or variable names with no counterpart in the
// snippet are ignored.
func (p Profile) Apply(snip *model.Snippet) {
	if snip == nil {
		return
	}

	for _, node := range snip.ProgramFilledText {
		variable, ok := model.CastProgramic[*model.Variable](node)
		if !ok {
			continue
		}
		value, ok := p.Variables[variable.Name]
		if !ok {
			continue
		}
		pinned := value
		variable.Resolver = func(string) string { return pinned }
	}

	for _, tab := range snip.Tabs {
		if answer, ok := p.Answers[tab.Num]; ok {
			if placeholder, isPlaceholder := model.CastField[*model.Placeholder](tab.Field); isPlaceholder {
				placeholder.SetText(answer)
			}
		}
		if selection, ok := p.Selections[tab.Num]; ok {
			if choice, isChoice := model.CastField[*model.Choice](tab.Field); isChoice {
				choice.Selected = selection
			}
		}
	}
}

// Store indexes profiles by name.
type Store struct {
	profiles map[string]Profile
}

// Profile returns the named profile.
func (s *Store) Profile(name string) (Profile, bool) {
	if s == nil {
		return Profile{}, false
	}
	p, ok := s.profiles[name]
	return p, ok
}

// Empty reports whether the store holds no profiles.
func (s *Store) Empty() bool {
	return s == nil || len(s.profiles) == 0
}

// LoadFS walks the provided filesystem and parses every YAML profile
// file, keyed by its path without the extension. A nil filesystem yields
// an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{profiles: make(map[string]Profile)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isProfileFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("profile: read %s: %w", path, err)
		}

		p, err := Parse(data)
		if err != nil {
			return fmt.Errorf("profile: file %s: %w", path, err)
		}

		name := profileName(path)
		if _, exists := store.profiles[name]; exists {
			return fmt.Errorf("profile: duplicate profile %q (file %s)", name, path)
		}
		store.profiles[name] = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func isProfileFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func profileName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
