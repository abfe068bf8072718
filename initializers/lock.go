package initializers

import (
	"context"
	"recruitment-backend/config"
	"recruitment-backend/lib/utils/lock"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func InitLock(ctx context.Context) {
	if !*config.Conf.Redis.Enabled {
		lock.Instance = lock.NewMemoryLock()
		log.Info("используются локальные блокировки заявок")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		panic("ошибка подключения к Redis: " + err.Error())
	}
	lock.Instance = lock.NewRedisLock(client, time.Duration(config.Conf.Recruitment.LockTTLSec)*time.Second)
	go func() {
		<-ctx.Done()
		if err := client.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия соединения с Redis")
		}
	}()
	log.Info("блокировки заявок хранятся в Redis")
}
