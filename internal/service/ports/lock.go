package ports

import "context"

// SpaceLocker serialises admissions per space. Acquire waits a bounded time
// and returns domain.ErrLockTimeout when the space stays busy.
type SpaceLocker interface {
	Acquire(ctx context.Context, spaceID string) (release func(), err error)
}
