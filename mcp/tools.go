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

// Package mcp exposes the resolver core as an MCP tool server: one
// mcp.NewServer plus mcp.AddTool per capability, over
// github.com/modelcontextprotocol/go-sdk.
package mcp

import (
	"context"
	"fmt"

	resolver "crateapi.dev/resolver"
	"crateapi.dev/resolver/render"
	"crateapi.dev/resolver/rustapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps an MCP server exposing one tool, resolve_crate, that runs
// the full FileParser -> ModuleWalker -> SymbolResolver -> NamespaceAssembler
// pipeline and returns a rendered report.
type Server struct {
	server *mcp.Server
}

// NewServer builds a resolve_crate-capable MCP server. name and version
// identify this server to the MCP client, independent of any crate being
// resolved.
func NewServer(name, version string) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    name,
			Version: version,
		}, nil),
	}
	s.setupTools()
	return s
}

// Run starts the MCP server over stdio, the transport editor/agent
// integrations expect.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) setupTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_crate",
		Description: "Resolve the public API surface of a Rust crate, namespace by namespace",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args resolveCrateArgs) (*mcp.CallToolResult, any, error) {
		return handleResolveCrate(ctx, req, args)
	})
}

// resolveCrateArgs is the resolve_crate tool's input schema.
type resolveCrateArgs struct {
	EntryFile  string `json:"entry_file" jsonschema:"Path to the crate's entry-point source file, e.g. src/lib.rs"`
	CrateName  string `json:"crate_name" jsonschema:"Name to label the root namespace with"`
	Visibility string `json:"visibility_mode,omitempty" jsonschema:"restricted-as-public (default) or public-only"`
	Format     string `json:"format,omitempty" jsonschema:"xml (default) or json"`
}

func handleResolveCrate(ctx context.Context, req *mcp.CallToolRequest, args resolveCrateArgs) (*mcp.CallToolResult, any, error) {
	opts := rustapi.ResolveOptions{}
	if args.Visibility == "public-only" {
		opts.Visibility = rustapi.VisibilityPublicOnly
	}

	namespaces, err := resolver.Resolve(args.EntryFile, args.CrateName, opts)
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("resolve failed: %s", err.Error())},
			},
			IsError: true,
		}, nil, nil
	}

	meta := render.Metadata{Name: args.CrateName}

	var text string
	if args.Format == "json" {
		data, marshalErr := render.JSON(namespaces, meta)
		if marshalErr != nil {
			return nil, nil, fmt.Errorf("marshal namespaces: %w", marshalErr)
		}
		text = string(data)
	} else {
		text = render.XML(namespaces, meta)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}
