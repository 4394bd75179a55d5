package usecase

import "context"

// SideEffectRunner runs fire-and-forget work. Failures are recorded and logged by the
// runner, never returned to the caller.
type SideEffectRunner interface {
	Go(ctx context.Context, name string, fn func(ctx context.Context) error)
}
