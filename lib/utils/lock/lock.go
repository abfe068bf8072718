package lock

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var ErrLockBusy = errors.New("ресурс заблокирован")

// Provider блокировка по ключу на время выполнения safeCode
type Provider interface {
	WithLock(ctx context.Context, key string, wait time.Duration, safeCode func() error) error
}

var Instance Provider = NewMemoryLock()

var (
	lockMap sync.Map
)

func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(50 * time.Millisecond):
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

// NewMemoryLock блокировка в пределах одного экземпляра сервиса
func NewMemoryLock() Provider {
	return memoryLock{}
}

type memoryLock struct{}

func (m memoryLock) WithLock(ctx context.Context, key string, wait time.Duration, safeCode func() error) error {
	success, err := WithDelay(ctx, key, wait, safeCode)
	if !success {
		return errors.Wrapf(ErrLockBusy, "ключ %v", key)
	}
	return err
}
