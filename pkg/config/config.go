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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/restyle/pkg/rules"
	"github.com/walteh/restyle/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = ".restyle.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Root     string      `json:"root,omitempty" yaml:"root,omitempty"`
	Files    []string    `json:"files,omitempty" yaml:"files,omitempty"`
	Profiles []string    `json:"profiles,omitempty" yaml:"profiles,omitempty"`
	Rules    []text.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
	DryRun   bool        `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Strict   bool        `json:"strict,omitempty" yaml:"strict,omitempty"`

	// directory of the file the config was loaded from
	location string
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = filepath.Dir(path)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Str("root", cfg.Root).
		Strs("profiles", cfg.Profiles).
		Int("files", len(cfg.Files)).
		Int("rules", len(cfg.Rules)).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	for _, name := range cfg.Profiles {
		if _, err := rules.Lookup(name); err != nil {
			return err
		}
	}

	if err := text.ValidateRules(cfg.Rules); err != nil {
		return err
	}

	for i, f := range cfg.Files {
		if strings.TrimSpace(f) == "" {
			return errors.Errorf("files[%d] is empty", i)
		}
	}

	// Set defaults
	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	return fmt.Sprintf("%s: profiles=%v rules=%d files=%d", root, cfg.Profiles, len(cfg.Rules), len(cfg.Files))
}
