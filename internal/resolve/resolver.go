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

// Package resolve is the SymbolResolver and NamespaceAssembler stages: a
// deliberately side-effect-free transformation from a flat module list
// into the final namespace list. The lookups use plain maps;
// github.com/IBM/fp-go's Option carries the "did you mean" suggestion of
// an unresolved-reference error.
package resolve

import (
	"sort"

	"crateapi.dev/resolver/internal/pathset"
	"crateapi.dev/resolver/internal/walker"
	"crateapi.dev/resolver/rustapi"
	"github.com/IBM/fp-go/option"
	"github.com/agext/levenshtein"
)

// ResolvedSymbol is the resolver's output record: one Symbol together with
// the set of module paths at which it is externally visible.
type ResolvedSymbol struct {
	Symbol  rustapi.Symbol
	Modules pathset.Set[string]
}

// Result is everything the resolver hands to the assembler.
type Result struct {
	Symbols []ResolvedSymbol
	// DocComments maps a publicly reachable module's path to its inner
	// doc comment, for every such module that has one.
	DocComments map[string]string
}

// definitionEntry pairs a Symbol with the module that declared it, so the
// resolver can test the *declaring* module's own reachability before
// unioning in any re-exporters'.
type definitionEntry struct {
	symbol    rustapi.Symbol
	modPath   string
	publicMod bool
}

// Resolve computes, for every definition in modules, the set of
// namespaces at which it is publicly reachable. modules is assumed to
// already reflect the walker's choice of VisibilityMode (which
// declarations counted as public), so this stage only needs the plain
// public-module-set rule. The second return value is non-nil only for an
// unresolved reference, which is fatal.
func Resolve(modules []walker.Module) (Result, rustapi.CoreError) {
	publicModules := make(map[string]bool, len(modules))
	for _, m := range modules {
		publicModules[m.Path] = isReachable(m)
	}

	definitions := make(map[string]definitionEntry)
	var order []string // insertion order of definitions, for deterministic output
	for _, m := range modules {
		for _, sym := range m.Definitions {
			key := absoluteSymbolPath(m.Path, sym.Name)
			definitions[key] = definitionEntry{
				symbol:    sym,
				modPath:   m.Path,
				publicMod: publicModules[m.Path],
			}
			order = append(order, key)
		}
	}

	references := make(map[string][]string)
	for _, m := range modules {
		for _, ref := range m.References {
			references[ref] = append(references[ref], m.Path)
		}
	}

	if err := checkUnresolvedReferences(references, definitions); err != nil {
		return Result{}, err
	}

	docComments := make(map[string]string)
	for _, m := range modules {
		if publicModules[m.Path] && m.DocComment != "" {
			docComments[m.Path] = m.DocComment
		}
	}

	var resolved []ResolvedSymbol
	for _, key := range order {
		def := definitions[key]

		visibleIn := pathset.New[string]()
		if def.publicMod {
			visibleIn.Add(def.modPath)
		}
		for _, referrer := range references[key] {
			if publicModules[referrer] {
				visibleIn.Add(referrer)
			}
		}

		if len(visibleIn) == 0 {
			continue
		}

		resolved = append(resolved, ResolvedSymbol{Symbol: def.symbol, Modules: visibleIn})
	}

	return Result{Symbols: resolved, DocComments: docComments}, nil
}

// isReachable implements the public-module-set rule: a module is
// publicly reachable iff its path is empty or its IsPublic flag is set.
// IsPublic already reflects the walker's VisibilityMode decision.
func isReachable(m walker.Module) bool {
	return m.Path == "" || m.IsPublic
}

func absoluteSymbolPath(modPath, name string) string {
	if modPath == "" {
		return name
	}
	return modPath + "::" + name
}

// checkUnresolvedReferences reports the first reference (in a stable,
// sorted order so error messages are deterministic) whose target has no
// matching definition -- this is a fatal error. When the pack of known
// definition keys contains a near match, the error carries a
// levenshtein-based "did you mean" suggestion.
func checkUnresolvedReferences(references map[string][]string, definitions map[string]definitionEntry) rustapi.CoreError {
	missing := make([]string, 0)
	for ref := range references {
		if _, ok := definitions[ref]; !ok {
			missing = append(missing, ref)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	target := missing[0]

	suggestion := suggestDefinition(target, definitions)
	fold := option.Fold(
		func() rustapi.CoreError { return &rustapi.ResolutionError{Path: target} },
		func(s string) rustapi.CoreError { return &rustapi.ResolutionError{Path: target, Suggestion: s} },
	)
	return fold(suggestion)
}

// suggestDefinition finds the known definition key with the smallest edit
// distance to target, returning it only when the match is close enough to
// plausibly be the typo the caller meant.
func suggestDefinition(target string, definitions map[string]definitionEntry) option.Option[string] {
	const maxDistance = 3

	best := ""
	bestDist := maxDistance + 1
	for key := range definitions {
		d := levenshtein.Distance(target, key, nil)
		if d < bestDist {
			bestDist, best = d, key
		}
	}
	if best == "" || bestDist > maxDistance {
		return option.None[string]()
	}
	return option.Some(best)
}
