package service

import "context"

// DispatchClaimer hands out short-lived exclusive claims on a dispatch key, so that
// overlapping ticks or replicas never dispatch the same notification twice.
type DispatchClaimer interface {
	// Claim returns true when the caller now owns key.
	Claim(ctx context.Context, key string) (bool, error)

	// Release gives up a claim so a later attempt may retry.
	Release(ctx context.Context, key string) error
}
