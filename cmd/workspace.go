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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	resolver "crateapi.dev/resolver"
	"crateapi.dev/resolver/cmd/config"
	"crateapi.dev/resolver/internal/logging"
	"crateapi.dev/resolver/manifest"
	"crateapi.dev/resolver/render"
	"crateapi.dev/resolver/rustapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// workspaceCmd resolves every member crate of a Cargo workspace. Each
// member is an entirely independent Resolve invocation -- the core
// pipeline's single-threaded, no-shared-state model is preserved per
// invocation; only the orchestration around it runs concurrently.
var workspaceCmd = &cobra.Command{
	Use:   "workspace [workspace-root]",
	Short: "Resolve every member crate of a Cargo workspace",
	Long: `workspace reads a Cargo.toml declaring a [workspace] table, expands its
members (including glob patterns like "crates/*"), and resolves each
member crate independently, writing one rendered report per crate under
--output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runWorkspace(root)
	},
}

func init() {
	rootCmd.AddCommand(workspaceCmd)

	workspaceCmd.Flags().Int("concurrency", 4, "maximum number of member crates resolved at once")
	workspaceCmd.Flags().StringP("output", "o", "", "output directory (default: print each report to stdout)")
	workspaceCmd.Flags().String("visibility", "restricted-as-public", "restricted-as-public or public-only")
	workspaceCmd.Flags().String("format", "xml", "xml or json")

	viper.BindPFlag("workspace.concurrency", workspaceCmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("workspace.output", workspaceCmd.Flags().Lookup("output"))
	viper.BindPFlag("resolve.visibility", workspaceCmd.Flags().Lookup("visibility"))
	viper.BindPFlag("resolve.format", workspaceCmd.Flags().Lookup("format"))
}

func runWorkspace(root string) error {
	var cfg config.ResolverConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	isWorkspace, members, err := manifest.IsWorkspaceRoot(root)
	if err != nil {
		return fmt.Errorf("reading workspace Cargo.toml: %w", err)
	}
	if !isWorkspace {
		return fmt.Errorf("%s is not a Cargo workspace root (no [workspace] members)", root)
	}

	memberDirs, err := expandMembers(root, members)
	if err != nil {
		return err
	}
	if len(memberDirs) == 0 {
		logging.Warning("workspace %s declares no resolvable members", root)
		return nil
	}

	concurrency := cfg.Workspace.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	outputDir := cfg.Workspace.Output
	format := cfg.Resolve.Format

	opts := rustapi.ResolveOptions{}
	if cfg.Resolve.Visibility == "public-only" {
		opts.Visibility = rustapi.VisibilityPublicOnly
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(concurrency)

	for _, dir := range memberDirs {
		dir := dir
		g.Go(func() error {
			return resolveMember(dir, format, outputDir, opts)
		})
	}
	return g.Wait()
}

// resolveMember runs one complete, independent resolve() invocation for a
// single workspace member crate -- its own parser instance, its own
// namespace set, no state shared with sibling goroutines.
func resolveMember(dir, format, outputDir string, opts rustapi.ResolveOptions) error {
	m, err := manifest.ReadCargoToml(dir)
	if err != nil {
		return fmt.Errorf("member %s: reading Cargo.toml: %w", dir, err)
	}
	meta := render.Metadata{Name: m.Name, Version: m.Version, Documentation: m.Documentation}

	logging.Debug("resolving workspace member %s (%s)", m.Name, dir)
	namespaces, resolveErr := resolver.Resolve(m.EntryPoint, m.Name, opts)
	if resolveErr != nil {
		return fmt.Errorf("member %s: %w", m.Name, resolveErr)
	}

	var out []byte
	if format == "json" {
		data, marshalErr := render.JSON(namespaces, meta)
		if marshalErr != nil {
			return fmt.Errorf("member %s: rendering JSON: %w", m.Name, marshalErr)
		}
		out = data
	} else {
		out = []byte(render.XML(namespaces, meta))
	}

	if outputDir == "" {
		fmt.Printf("# %s\n%s\n", m.Name, out)
		return nil
	}
	dest := filepath.Join(outputDir, m.Name+"."+extensionFor(format))
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return fmt.Errorf("member %s: writing %s: %w", m.Name, dest, err)
	}
	logging.Success("wrote %s", dest)
	return nil
}

// expandMembers resolves Cargo.toml [workspace] members, including glob
// patterns, to a deduplicated list of crate directories.
func expandMembers(root string, members []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	for _, pattern := range members {
		full := filepath.Join(root, pattern)
		matches, err := filepath.Glob(full)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace member pattern %q: %w", pattern, err)
		}
		if matches == nil {
			// Not a glob pattern (or a glob that matched nothing); treat
			// literally if it exists.
			if info, statErr := os.Stat(full); statErr == nil && info.IsDir() {
				matches = []string{full}
			}
		}
		for _, m := range matches {
			info, statErr := os.Stat(m)
			if statErr != nil || !info.IsDir() {
				continue
			}
			if _, err := os.Stat(filepath.Join(m, "Cargo.toml")); err != nil {
				continue
			}
			if !seen[m] {
				seen[m] = true
				dirs = append(dirs, m)
			}
		}
	}
	return dirs, nil
}

func extensionFor(format string) string {
	if format == "json" {
		return "json"
	}
	return "xml"
}
