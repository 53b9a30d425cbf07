package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "taskflow:"

type RedisRepository struct {
	client redis.Cmdable
	prefix string
}

// NewRedisRepository stores every key under prefix, so several profiles
// can share one Redis database.
func NewRedisRepository(client redis.Cmdable, prefix string) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *RedisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *RedisRepository) List(ctx context.Context) (map[string][]byte, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}

	result := make(map[string][]byte, len(keys))
	for _, k := range keys {
		value, err := r.client.Get(ctx, k).Bytes()
		if errors.Is(err, redis.Nil) {
			// deleted between SCAN and GET
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list kv: %w", err)
		}
		result[strings.TrimPrefix(k, r.prefix)] = value
	}
	return result, nil
}

func (r *RedisRepository) Clear(ctx context.Context) error {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

// replaceScript deletes every key matching ARGV[1], then sets the
// ARGV[2..] key/value pairs. Redis runs it without interleaving other
// clients, so a key written during the SCAN cannot survive the replace.
var replaceScript = redis.NewScript(`
local cursor = "0"
repeat
	local res = redis.call("SCAN", cursor, "MATCH", ARGV[1], "COUNT", 100)
	cursor = res[1]
	for _, k in ipairs(res[2]) do
		redis.call("DEL", k)
	end
until cursor == "0"
for i = 2, #ARGV, 2 do
	redis.call("SET", ARGV[i], ARGV[i + 1])
end
return 1
`)

func (r *RedisRepository) Replace(ctx context.Context, entries map[string][]byte) error {
	args := make([]interface{}, 0, 1+2*len(entries))
	args = append(args, r.prefix+"*")
	for k, v := range entries {
		args = append(args, r.prefix+k, v)
	}

	if err := replaceScript.Run(ctx, r.client, nil, args...).Err(); err != nil {
		return fmt.Errorf("failed to replace kv: %w", err)
	}
	return nil
}

func (r *RedisRepository) scanKeys(ctx context.Context) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}
