/*
Copyright © 2025 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package config is the viper-backed configuration shape every cmd/
// subcommand binds its flags into: CLI flags override a config file,
// which overrides built-in defaults.
package config

import "fmt"

// ResolveConfig holds the options for a single-crate "resolve" run.
type ResolveConfig struct {
	// EntryFile is the crate's root source file. When empty, it is
	// derived from the crate's Cargo.toml [lib] path (or the
	// conventional src/lib.rs / src/main.rs fallback).
	EntryFile string `mapstructure:"entryFile" yaml:"entryFile"`
	// CrateName labels the root namespace in rendered output. When
	// empty, it is read from Cargo.toml's [package] name.
	CrateName string `mapstructure:"crateName" yaml:"crateName"`
	// Visibility is either "restricted-as-public" (default) or
	// "public-only"; see rustapi.VisibilityMode.
	Visibility string `mapstructure:"visibility" yaml:"visibility"`
	// Format is the rendered output format: "xml" (default) or "json".
	Format string `mapstructure:"format" yaml:"format"`
	// Output is the file path to write rendered output to. Empty means
	// stdout.
	Output string `mapstructure:"output" yaml:"output"`
}

// WorkspaceConfig holds the options for a multi-crate "workspace" run.
type WorkspaceConfig struct {
	Root          string `mapstructure:"root" yaml:"root"`
	Concurrency   int    `mapstructure:"concurrency" yaml:"concurrency"`
	ResolveConfig `mapstructure:",squash" yaml:",inline"`
}

// MCPConfig holds the options for the "serve-mcp" command.
type MCPConfig struct {
	// Address is loaded from configuration but not read by serve-mcp,
	// which always serves over the stdio transport.
	Address string `mapstructure:"address" yaml:"address"`
}

// ResolverConfig is the root configuration object, loaded by viper from
// (in increasing precedence) defaults, a config file, environment
// variables, and CLI flags.
type ResolverConfig struct {
	ProjectDir string          `mapstructure:"projectDir" yaml:"projectDir"`
	ConfigFile string          `mapstructure:"configFile" yaml:"configFile"`
	Verbose    bool            `mapstructure:"verbose" yaml:"verbose"`
	Quiet      bool            `mapstructure:"quiet" yaml:"quiet"`
	Resolve    ResolveConfig   `mapstructure:"resolve" yaml:"resolve"`
	Workspace  WorkspaceConfig `mapstructure:"workspace" yaml:"workspace"`
	MCP        MCPConfig       `mapstructure:"mcp" yaml:"mcp"`
}

// Clone returns a deep copy, so a command can mutate its own working
// config (e.g. applying a flag override) without perturbing a shared
// viper-loaded base.
func (c *ResolverConfig) Clone() *ResolverConfig {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// validModes are the two VisibilityMode spellings accepted in config
// files and on the --visibility flag.
var validModes = map[string]bool{
	"":                     true,
	"restricted-as-public": true,
	"public-only":          true,
}

// Validate reports a descriptive error for any field whose value is
// syntactically well-formed but out of the set this tool understands.
func (c *ResolverConfig) Validate() error {
	if !validModes[c.Resolve.Visibility] {
		return fmt.Errorf("invalid resolve.visibility %q: must be %q or %q", c.Resolve.Visibility, "restricted-as-public", "public-only")
	}
	if c.Resolve.Format != "" && c.Resolve.Format != "xml" && c.Resolve.Format != "json" {
		return fmt.Errorf("invalid resolve.format %q: must be %q or %q", c.Resolve.Format, "xml", "json")
	}
	return nil
}
