package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ameleshko/cplxcalc/internal/shell"
	"github.com/ameleshko/cplxcalc/pkg/project"
)

func main() {
	versionFlag := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s v%s\n", project.Name, project.Version)
		os.Exit(0)
	}

	if err := shell.New(os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatalf("Shell error: %v", err)
	}
}
