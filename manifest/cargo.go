/*
Copyright © 2025 Benny Powers

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

// Package manifest reads Cargo.toml. It is thin and deliberately out of
// scope for the resolver core, kept here only so the CLI and MCP
// surfaces have somewhere to get a crate name, version, and entry point
// from.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// defaultEntryPoints are tried, in order, when Cargo.toml does not declare
// an explicit [lib] path.
var defaultEntryPoints = []string{
	filepath.Join("src", "lib.rs"),
	filepath.Join("src", "main.rs"),
}

// cargoToml is the subset of Cargo.toml this tool cares about.
type cargoToml struct {
	Package struct {
		Name        string `toml:"name"`
		Version     string `toml:"version"`
		Description string `toml:"description"`
	} `toml:"package"`
	Lib struct {
		Path string `toml:"path"`
	} `toml:"lib"`
	Workspace struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
}

// CargoManifest is the resolved, directly-usable result of reading a
// crate's Cargo.toml: name, version, short documentation, and the file
// Resolve should treat as the crate root.
type CargoManifest struct {
	Name          string
	Version       string
	Documentation string
	EntryPoint    string
	Members       []string
}

// ErrNoEntryPoint is returned when Cargo.toml declares no [lib] path and
// neither conventional entry point file exists under the crate root.
var ErrNoEntryPoint = fmt.Errorf("no lib.rs or main.rs found and no [lib] path declared")

// ReadCargoToml parses the Cargo.toml file at root/Cargo.toml and resolves
// the crate's entry-point source file per Cargo's own lookup convention:
// an explicit [lib] path wins, otherwise src/lib.rs, then src/main.rs.
func ReadCargoToml(root string) (CargoManifest, error) {
	var m CargoManifest
	path := filepath.Join(root, "Cargo.toml")
	var doc cargoToml
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return m, fmt.Errorf("read %s: %w", path, err)
	}

	m.Name = doc.Package.Name
	m.Version = doc.Package.Version
	m.Documentation = doc.Package.Description
	m.Members = doc.Workspace.Members

	if doc.Lib.Path != "" {
		m.EntryPoint = filepath.Join(root, doc.Lib.Path)
		return m, nil
	}

	for _, candidate := range defaultEntryPoints {
		full := filepath.Join(root, candidate)
		if _, err := os.Stat(full); err == nil {
			m.EntryPoint = full
			return m, nil
		}
	}

	return m, ErrNoEntryPoint
}

// IsWorkspaceRoot reports whether the Cargo.toml at root declares a
// [workspace] table with member crates, the multi-crate analogue of a
// single library's entry point.
func IsWorkspaceRoot(root string) (bool, []string, error) {
	path := filepath.Join(root, "Cargo.toml")
	var doc cargoToml
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return false, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return len(doc.Workspace.Members) > 0, doc.Workspace.Members, nil
}
