package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// снимается только блокировка, выставленная владельцем токена
const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

const keyPrefix = "recruitment:lock:"

// NewRedisLock блокировка, общая для всех экземпляров сервиса. ttl ограничивает время
// жизни блокировки, если экземпляр упал не сняв ее.
func NewRedisLock(client *redis.Client, ttl time.Duration) Provider {
	return redisLock{
		client: client,
		ttl:    ttl,
		script: redis.NewScript(unlockScript),
	}
}

type redisLock struct {
	client *redis.Client
	ttl    time.Duration
	script *redis.Script
}

func (r redisLock) WithLock(ctx context.Context, key string, wait time.Duration, safeCode func() error) error {
	token := uuid.NewString()
	redisKey := keyPrefix + key
	isTimeout := time.After(wait)
	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			return errors.Wrap(err, "ошибка установки блокировки")
		}
		if ok {
			break
		}
		select {
		case <-isTimeout:
			return errors.Wrapf(ErrLockBusy, "ключ %v", key)
		case <-ctx.Done():
			return errors.Wrapf(ErrLockBusy, "ключ %v", key)
		case <-time.After(50 * time.Millisecond):
		}
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := r.script.Run(releaseCtx, r.client, []string{redisKey}, token).Err(); err != nil {
			log.WithError(err).WithField("key", key).Error("ошибка снятия блокировки")
		}
	}()
	return safeCode()
}
