package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ameleshko/cplxcalc/internal/api"
	"github.com/ameleshko/cplxcalc/pkg/project"
	"github.com/ameleshko/cplxcalc/pkg/types"

	gfshutdown "github.com/gelmium/graceful-shutdown"
)

const shutdownTimeout = 30 * time.Second

func main() {
	var (
		listenAddr  = flag.String("listen-addr", ":8080", "Address for the HTTP API to listen on")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s-api v%s\n", project.Name, project.Version)
		os.Exit(0)
	}

	config := &types.Config{
		LogLevel:   *logLevel,
		ListenAddr: *listenAddr,
	}

	apiServer := api.NewAPIServer(config)

	go func() {
		if err := apiServer.Start(context.Background()); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Handle SIGINT/SIGTERM, draining in-flight requests before exit
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"api-server": func(ctx context.Context) error {
				return apiServer.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("API server exited with code: %d", exitCode)
	os.Exit(exitCode)
}
