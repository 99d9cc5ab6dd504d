// Package mcp exposes the directory over the Model Context Protocol on
// stdio, so assistants can search county contacts as tools.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ocfl/ocfl"
)

const (
	// ServerName is the MCP server name.
	ServerName = "ocfl-directory"
	// ServerVersion is reported to clients during initialization.
	ServerVersion = "3.0.0"
)

// Server wraps the MCP server around a DirectoryService.
type Server struct {
	mcp       *server.MCPServer
	directory ocfl.DirectoryService
}

// NewServer creates a server with every directory tool registered.
func NewServer(directory ocfl.DirectoryService) *Server {
	s := &Server{
		mcp:       server.NewMCPServer(ServerName, ServerVersion),
		directory: directory,
	}
	s.registerTools()
	return s
}

// Serve answers requests on stdin/stdout until the input closes.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(directorySearchTool(), s.handleSearch)
	s.mcp.AddTool(directoryRegexTool(), s.handleRegex)
	s.mcp.AddTool(directoryBrowseTool(), s.handleBrowse)
	s.mcp.AddTool(directoryListTool(), s.handleList)
	s.mcp.AddTool(phoneLookupTool(), s.handlePhoneLookup)
}
