package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the periodic-table tools.
type Server struct {
	catalog *elements.Catalog
	gen     genai.Generator
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. The
// generator may be nil; the mix tool then reports that no provider is
// configured.
func NewServer(catalog *elements.Catalog, gen genai.Generator) *Server {
	s := &Server{
		catalog: catalog,
		gen:     gen,
	}

	s.mcp = server.NewMCPServer(
		"alkimiya",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(lookupElementTool, s.handleLookupElement)
	s.mcp.AddTool(searchElementsTool, s.handleSearchElements)
	s.mcp.AddTool(mixElementsTool, s.handleMixElements)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
