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

// Package filelist returns every source file under a directory matching
// a set of extensions, honouring .gitignore along the way. No command in
// this tree calls it: the workspace command finds member crates from
// Cargo.toml, and the core pipeline itself never lists directories -- it
// only ever follows explicit module declarations.
package filelist

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Find walks root collecting every file whose extension is in extensions,
// skipping .git entirely and anything matched by a .gitignore at root.
func Find(root string, extensions []string) ([]string, error) {
	var matcher *ignore.GitIgnore
	if content, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
		matcher = ignore.CompileIgnoreLines(strings.Split(string(content), "\n")...)
	}

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if matcher != nil && relPath != "." && matcher.MatchesPath(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher != nil && matcher.MatchesPath(relPath) {
			return nil
		}

		ext := filepath.Ext(path)
		for _, want := range extensions {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return files, nil
}
