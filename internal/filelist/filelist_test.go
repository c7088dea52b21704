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

package filelist_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"crateapi.dev/resolver/internal/filelist"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestFind_CollectsMatchingExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/lib.rs", "pub fn a() {}")
	writeFile(t, root, "src/util.rs", "pub fn b() {}")
	writeFile(t, root, "README.md", "not rust")

	files, err := filelist.Find(root, []string{".rs"})
	require.NoError(t, err)
	require.Len(t, files, 2)
}

func TestFind_HonoursGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "target/\n")
	writeFile(t, root, "src/lib.rs", "pub fn a() {}")
	writeFile(t, root, "target/generated.rs", "pub fn gen() {}")

	files, err := filelist.Find(root, []string{".rs"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(root, "src/lib.rs"), files[0])
}

func TestFind_SkipsGitDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/lib.rs", "pub fn a() {}")
	writeFile(t, root, ".git/hooks/pre-commit.rs", "not a crate file")

	files, err := filelist.Find(root, []string{".rs"})
	require.NoError(t, err)
	sort.Strings(files)
	require.Len(t, files, 1)
}
