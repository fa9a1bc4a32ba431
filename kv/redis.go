package kv

import (
	"log"

	"pdvstar/globals"

	"github.com/redis/go-redis/v9"
)

// Redis adapts a redis client to the Store contract. Connectivity problems
// are logged and reported as absent keys; callers already tolerate a cold
// store.
type Redis struct {
	conn *redis.Client
}

func NewRedis(addr, password string) *Redis {
	return &Redis{conn: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})}
}

func (r *Redis) Get(key string) (string, bool) {
	v, err := r.conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("kv: redis get %s: %v", key, err)
		return "", false
	}
	return v, true
}

func (r *Redis) Set(key, value string) {
	if err := r.conn.Set(globals.Ctx, key, value, 0).Err(); err != nil {
		log.Printf("kv: redis set %s: %v", key, err)
	}
}

func (r *Redis) Delete(key string) {
	if err := r.conn.Del(globals.Ctx, key).Err(); err != nil {
		log.Printf("kv: redis del %s: %v", key, err)
	}
}
