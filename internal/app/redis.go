package app

import (
	"github.com/redis/go-redis/v9"
)

func (a *application) InitRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     a.config.Redis.Addr,
		Password: a.config.Redis.Password,
		DB:       a.config.Redis.DB,
	})
}
