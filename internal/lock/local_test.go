package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SerialisesSameSpace(t *testing.T) {
	l := NewLocal(time.Second)

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), "s1")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
}

func TestLocal_TimesOut(t *testing.T) {
	l := NewLocal(30 * time.Millisecond)

	release, err := l.Acquire(context.Background(), "s1")
	require.NoError(t, err)
	defer release()

	_, err = l.Acquire(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrLockTimeout)
}

func TestLocal_DifferentSpacesDoNotContend(t *testing.T) {
	l := NewLocal(30 * time.Millisecond)

	r1, err := l.Acquire(context.Background(), "s1")
	require.NoError(t, err)
	defer r1()

	r2, err := l.Acquire(context.Background(), "s2")
	require.NoError(t, err)
	r2()
}

func TestLocal_ReleaseIsIdempotent(t *testing.T) {
	l := NewLocal(30 * time.Millisecond)

	release, err := l.Acquire(context.Background(), "s1")
	require.NoError(t, err)
	release()
	assert.NotPanics(t, release)

	again, err := l.Acquire(context.Background(), "s1")
	require.NoError(t, err)
	again()
}

func TestLocal_ParentContextCancelled(t *testing.T) {
	l := NewLocal(time.Second)

	release, err := l.Acquire(context.Background(), "s1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.Acquire(ctx, "s1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrLockTimeout)
}
