// Package lock provides the in-process per-space admission lock.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"golang.org/x/sync/semaphore"
)

// Local holds one single-slot semaphore per space. It serialises admissions
// inside one process only.
type Local struct {
	wait time.Duration
	sems sync.Map // space id -> *semaphore.Weighted
}

func NewLocal(wait time.Duration) *Local {
	return &Local{wait: wait}
}

func (l *Local) Acquire(ctx context.Context, spaceID string) (func(), error) {
	v, _ := l.sems.LoadOrStore(spaceID, semaphore.NewWeighted(1))
	sem := v.(*semaphore.Weighted)

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	if err := sem.Acquire(waitCtx, 1); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: space %s", domain.ErrLockTimeout, spaceID)
		}
		return nil, err
	}

	var once sync.Once
	return func() { once.Do(func() { sem.Release(1) }) }, nil
}
