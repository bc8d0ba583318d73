package cache

import (
	"time"

	"github.com/gomodule/redigo/redis"
)

// Get returns redis.ErrNil when the key is missing.
func Get(key string, conn redis.Conn) ([]byte, error) {
	return redis.Bytes(conn.Do("GET", key))
}

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	return err
}

// SetEx overwrites key and resets its expiry.
func SetEx(key string, value []byte, ttl time.Duration, conn redis.Conn) error {
	_, err := redis.String(conn.Do("SET", key, value, "EX", int64(ttl/time.Second)))
	return err
}

func Exists(key string, conn redis.Conn) (bool, error) {
	return redis.Bool(conn.Do("EXISTS", key))
}

// Expire reports false when the key did not exist.
func Expire(key string, ttl time.Duration, conn redis.Conn) (bool, error) {
	return redis.Bool(conn.Do("EXPIRE", key, int64(ttl/time.Second)))
}
