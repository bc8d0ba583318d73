package cache

import (
	"time"

	"github.com/gomodule/redigo/redis"
)

func CreateRedisPool(url string, maxIdle int) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     maxIdle,
		IdleTimeout: 60 * time.Second,
		Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", url) },
	}
}
