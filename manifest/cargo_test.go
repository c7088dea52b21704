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

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCargoToml(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(body), 0o644))
}

func TestReadCargoTomlDefaultEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeCargoToml(t, dir, `
[package]
name = "widget"
version = "0.3.1"
description = "a small widget crate"
`)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "lib.rs"), []byte("pub fn a() {}"), 0o644))

	m, err := ReadCargoToml(dir)
	require.NoError(t, err)
	assert.Equal(t, "widget", m.Name)
	assert.Equal(t, "0.3.1", m.Version)
	assert.Equal(t, "a small widget crate", m.Documentation)
	assert.Equal(t, filepath.Join(dir, "src", "lib.rs"), m.EntryPoint)
}

func TestReadCargoTomlExplicitLibPath(t *testing.T) {
	dir := t.TempDir()
	writeCargoToml(t, dir, `
[package]
name = "widget"
version = "0.1.0"

[lib]
path = "src/custom_root.rs"
`)

	m, err := ReadCargoToml(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "src", "custom_root.rs"), m.EntryPoint)
}

func TestReadCargoTomlNoEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeCargoToml(t, dir, `
[package]
name = "widget"
version = "0.1.0"
`)

	_, err := ReadCargoToml(dir)
	assert.ErrorIs(t, err, ErrNoEntryPoint)
}

func TestIsWorkspaceRoot(t *testing.T) {
	dir := t.TempDir()
	writeCargoToml(t, dir, `
[workspace]
members = ["crates/a", "crates/b"]
`)

	isWorkspace, members, err := IsWorkspaceRoot(dir)
	require.NoError(t, err)
	assert.True(t, isWorkspace)
	assert.ElementsMatch(t, []string{"crates/a", "crates/b"}, members)
}
