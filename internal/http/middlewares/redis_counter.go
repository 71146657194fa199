package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/rueidis"
)

// incrementScript counts a hit and makes sure the key expires. The TTL is
// re-applied to any key left without one, so a window can never become
// permanent.
var incrementScript = rueidis.NewLuaScript(`
local count = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// RedisCounter shares windows between processes.
type RedisCounter struct {
	client rueidis.Client
	prefix string
}

func NewRedisCounter(client rueidis.Client, prefix string) *RedisCounter {
	return &RedisCounter{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	keys := []string{r.prefix + key}
	args := []string{strconv.FormatInt(window.Milliseconds(), 10)}

	return incrementScript.Exec(ctx, r.client, keys, args).AsInt64()
}
