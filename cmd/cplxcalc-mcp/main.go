package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ameleshko/cplxcalc/internal/server"
	"github.com/ameleshko/cplxcalc/pkg/project"
	"github.com/ameleshko/cplxcalc/pkg/types"
)

func main() {
	var (
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s-mcp v%s\n", project.Name, project.Version)
		os.Exit(0)
	}

	config := &types.Config{
		LogLevel: *logLevel,
	}

	// Start the server (this blocks until the server shuts down)
	mcpServer := server.NewCalcServer(config)
	if err := mcpServer.Start(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
