package types

import "context"

// Server defines the interface implemented by the cplxcalc servers
type Server interface {
	Start(ctx context.Context) error
}
