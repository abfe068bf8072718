package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMemoryLock(t *testing.T) {
	t.Run(`serializes same key`, func(t *testing.T) {
		locker := NewMemoryLock()
		var active, maxActive, failed int32
		wg := sync.WaitGroup{}
		for n := 0; n < 5; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := locker.WithLock(context.Background(), "application:1", 5*time.Second, func() error {
					current := atomic.AddInt32(&active, 1)
					for {
						prev := atomic.LoadInt32(&maxActive)
						if current <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, current) {
							break
						}
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&active, -1)
					return nil
				})
				if err != nil {
					atomic.AddInt32(&failed, 1)
				}
			}()
		}
		wg.Wait()
		require.Equal(t, int32(0), failed)
		require.Equal(t, int32(1), maxActive)
	})

	t.Run(`busy key`, func(t *testing.T) {
		locker := NewMemoryLock()
		started := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_ = locker.WithLock(context.Background(), "application:2", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		err := locker.WithLock(context.Background(), "application:2", 100*time.Millisecond, func() error {
			return nil
		})
		close(release)
		require.True(t, errors.Is(err, ErrLockBusy))

		// другой ключ не блокируется
		err = locker.WithLock(context.Background(), "application:3", 100*time.Millisecond, func() error {
			return nil
		})
		require.Nil(t, err)
	})

	t.Run(`code error returned`, func(t *testing.T) {
		codeErr := errors.New("ошибка")
		err := NewMemoryLock().WithLock(context.Background(), "application:4", time.Second, func() error {
			return codeErr
		})
		require.Equal(t, codeErr, err)
		_, loaded := lockMap.Load("application:4")
		require.False(t, loaded)
	})
}
