// Package registrar defines the bulk availability seam
package registrar

import "context"

// Registrar reports which of the given names are available for registration
// one call is one bulk check; callers own batching
type Registrar interface {
	Name() string
	Available(ctx context.Context, names []string) ([]string, error)
}
