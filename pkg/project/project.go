// Package project holds the project identity shared by all binaries.
package project

const (
	// Name is the canonical project name.
	Name = "cplxcalc"

	// Version is the project version, bumped on release.
	Version = "0.1.0"
)
