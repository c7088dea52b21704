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
	"crateapi.dev/resolver/internal/logging"
	"crateapi.dev/resolver/internal/version"
	"crateapi.dev/resolver/mcp"
	"github.com/spf13/cobra"
)

// serveMCPCmd starts the resolve_crate MCP tool server over stdio, so an
// editor or agent can call the resolver pipeline directly instead of
// shelling out to "resolve".
var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Serve the resolver as an MCP tool over stdio",
	Long: `serve-mcp starts a long-lived MCP server exposing a single tool,
resolve_crate, which runs the FileParser -> ModuleWalker -> SymbolResolver
-> NamespaceAssembler pipeline on request and returns a rendered report.

The server speaks MCP over stdio, matching the transport editor and agent
integrations expect. It exits when its stdin is closed or the context is
canceled (Ctrl-C).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Info("starting MCP server on stdio")
		server := mcp.NewServer("crateapi-resolver", version.GetVersion())
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveMCPCmd)
}
