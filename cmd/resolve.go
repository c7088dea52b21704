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
)

// resolveCmd runs the core pipeline over a single Rust crate.
var resolveCmd = &cobra.Command{
	Use:   "resolve [crate-dir]",
	Short: "Resolve one crate's public API surface",
	Long: `resolve walks a single Rust crate's source tree starting from its
entry point, computes the transitive set of externally observable
symbols, and renders the result as an XML-ish report or JSON.

If --entry-file or --crate-name are omitted, they are read from the
crate's Cargo.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		crateDir := "."
		if len(args) == 1 {
			crateDir = args[0]
		}
		return runResolve(crateDir, viper.GetString("resolve.entryFile"), viper.GetString("resolve.crateName"))
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().String("entry-file", "", "entry-point source file (default: read from Cargo.toml)")
	resolveCmd.Flags().String("crate-name", "", "crate name for the root namespace (default: read from Cargo.toml)")
	resolveCmd.Flags().String("visibility", "restricted-as-public", "restricted-as-public or public-only")
	resolveCmd.Flags().String("format", "xml", "xml or json")
	resolveCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	viper.BindPFlag("resolve.entryFile", resolveCmd.Flags().Lookup("entry-file"))
	viper.BindPFlag("resolve.crateName", resolveCmd.Flags().Lookup("crate-name"))
	viper.BindPFlag("resolve.visibility", resolveCmd.Flags().Lookup("visibility"))
	viper.BindPFlag("resolve.format", resolveCmd.Flags().Lookup("format"))
	viper.BindPFlag("resolve.output", resolveCmd.Flags().Lookup("output"))
}

// runResolve is the resolve command's implementation, split out from
// RunE. cmd/workspace.go does not call it; each workspace member goes
// through resolveMember instead.
func runResolve(crateDir, entryFileFlag, crateNameFlag string) error {
	var cfg config.ResolverConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	entryFile := entryFileFlag
	crateName := crateNameFlag
	var meta render.Metadata

	if entryFile == "" || crateName == "" {
		m, err := manifest.ReadCargoToml(crateDir)
		if err != nil {
			return fmt.Errorf("reading Cargo.toml: %w", err)
		}
		if entryFile == "" {
			entryFile = m.EntryPoint
		}
		if crateName == "" {
			crateName = m.Name
		}
		meta = render.Metadata{Name: m.Name, Version: m.Version, Documentation: m.Documentation}
	}
	meta.Name = crateName

	opts := rustapi.ResolveOptions{}
	if cfg.Resolve.Visibility == "public-only" {
		opts.Visibility = rustapi.VisibilityPublicOnly
	}

	logging.Debug("resolving %s from entry point %s", crateName, entryFile)
	namespaces, resolveErr := resolver.Resolve(entryFile, crateName, opts)
	if resolveErr != nil {
		return resolveErr
	}

	var out []byte
	switch cfg.Resolve.Format {
	case "json":
		data, err := render.JSON(namespaces, meta)
		if err != nil {
			return fmt.Errorf("rendering JSON: %w", err)
		}
		out = data
	default:
		out = []byte(render.XML(namespaces, meta))
	}

	output := cfg.Resolve.Output
	if output == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	logging.Success("wrote %s", output)
	return nil
}
