// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rules holds the built-in rewrite profiles. Each profile is an ordered
// rule table plus the list of files it was written for.
package rules

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"slices"
	"sort"
	"sync"

	"github.com/walteh/restyle/pkg/text"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var profileFS embed.FS

// 📦 Profile is a named, ordered rule table with its default target files
type Profile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Files       []string    `yaml:"files"`
	Rules       []text.Rule `yaml:"rules"`
}

// 🏭 Compile compiles the profile's rules
func (p *Profile) Compile() (*text.RuleSet, error) {
	rs, err := text.Compile(p.Rules)
	if err != nil {
		return nil, errors.Errorf("profile %s: %w", p.Name, err)
	}
	return rs, nil
}

// clone copies p so callers cannot change the cached tables
func (p *Profile) clone() *Profile {
	out := *p
	out.Files = slices.Clone(p.Files)
	out.Rules = slices.Clone(p.Rules)
	return &out
}

var loadBuiltin = sync.OnceValues(func() (map[string]*Profile, error) {
	return load(profileFS, "profiles")
})

// load decodes every yaml file in dir. Profile names must match file names.
func load(fsys fs.FS, dir string) (map[string]*Profile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Errorf("reading profiles: %w", err)
	}

	profiles := make(map[string]*Profile, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Errorf("reading profile %s: %w", entry.Name(), err)
		}

		var p Profile
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&p); err != nil {
			return nil, errors.Errorf("parsing profile %s: %w", entry.Name(), err)
		}

		want := entry.Name()[:len(entry.Name())-len(".yaml")]
		if p.Name != want {
			return nil, errors.Errorf("profile %s: name %q does not match file name", entry.Name(), p.Name)
		}
		if _, err := p.Compile(); err != nil {
			return nil, err
		}
		profiles[p.Name] = &p
	}
	return profiles, nil
}

// 🔍 Lookup returns the built-in profile with the given name
func Lookup(name string) (*Profile, error) {
	profiles, err := loadBuiltin()
	if err != nil {
		return nil, err
	}
	p, ok := profiles[name]
	if !ok {
		return nil, errors.Errorf("unknown profile %q (available: %v)", name, Names())
	}
	return p.clone(), nil
}

// Names returns the names of all built-in profiles, sorted
func Names() []string {
	profiles, err := loadBuiltin()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every built-in profile, sorted by name
func All() ([]*Profile, error) {
	profiles, err := loadBuiltin()
	if err != nil {
		return nil, err
	}
	out := make([]*Profile, 0, len(profiles))
	for _, name := range Names() {
		out = append(out, profiles[name].clone())
	}
	return out, nil
}
