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

package rustapi

import "fmt"

// CoreError is the sum of the two fatal error kinds the pipeline can
// produce. Both ParseError and ResolutionError implement it, so callers
// can type-switch instead of string-matching a flat error message.
type CoreError interface {
	error
	isCoreError()
}

// ParseError reports a file the concrete-syntax parser could not handle,
// a file that failed to read, or one that was not valid UTF-8 text.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
}

func (*ParseError) isCoreError() {}

// ResolutionError reports a reexport reference whose absolute target path
// never appeared among the crate's definitions.
type ResolutionError struct {
	Path       string
	Suggestion string
}

func (e *ResolutionError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unresolved reference: %s", e.Path)
	}
	return fmt.Sprintf("unresolved reference: %s (did you mean %q?)", e.Path, e.Suggestion)
}

func (*ResolutionError) isCoreError() {}

var (
	_ CoreError = (*ParseError)(nil)
	_ CoreError = (*ResolutionError)(nil)
)
