package secondary

import "context"

type LoginStatePort interface {
	// Save persists a freshly issued one-time login state.
	Save(ctx context.Context, state string) error
	// Consume atomically looks up and deletes the state. It returns true
	// exactly once per saved state; unknown or already-consumed states
	// return false with no side effects.
	Consume(ctx context.Context, state string) (bool, error)
}
