// Package server wires the calculator engine into an MCP server over stdio.
package server

import (
	"context"
	"fmt"
	"log"

	"github.com/ameleshko/cplxcalc/internal/engine"
	"github.com/ameleshko/cplxcalc/internal/tools"
	"github.com/ameleshko/cplxcalc/pkg/project"
	"github.com/ameleshko/cplxcalc/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the cplxcalc MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	engine    *engine.Engine
	config    *types.Config
}

// NewCalcServer creates a new cplxcalc MCP server
func NewCalcServer(config *types.Config) *CalcServer {
	return &CalcServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version),
		engine:    engine.New(),
		config:    config,
	}
}

// Start starts the cplxcalc MCP server on stdio and blocks until it shuts down
func (s *CalcServer) Start(ctx context.Context) error {
	log.Printf("Starting cplxcalc MCP server with config: %+v", s.config)

	s.registerTools()

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalcServer) registerTools() {
	calculateTool := tools.NewCalculateTool(s.engine)
	s.mcpServer.AddTool(calculateTool.GetTool(), calculateTool.Handle)

	parseNumberTool := tools.NewParseNumberTool(s.engine)
	s.mcpServer.AddTool(parseNumberTool.GetTool(), parseNumberTool.Handle)

	magnitudeTool := tools.NewMagnitudeTool(s.engine)
	s.mcpServer.AddTool(magnitudeTool.GetTool(), magnitudeTool.Handle)
}
