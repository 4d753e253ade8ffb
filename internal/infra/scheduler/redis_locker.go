package scheduler

import (
	"context"
	"time"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/go-co-op/gocron"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrLockHeld = errs.New("scheduler lock held by another instance")

const lockPrefix = "loyalty:scheduler:"

// unlockScript deletes the key only while it still carries our token.
const unlockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// LockClient is the subset of *redis.Client the locker uses.
type LockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RedisLocker implements gocron.Locker with SET NX and a per-lock token.
type RedisLocker struct {
	client LockClient
	ttl    time.Duration
}

func NewRedisLocker(client LockClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (gocron.Lock, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, lockPrefix+key, token, l.ttl).Result()
	if err != nil {
		return nil, errs.Wrapf(err, "acquire scheduler lock %s", key)
	}
	if !ok {
		return nil, ErrLockHeld
	}
	return &redisLock{client: l.client, key: lockPrefix + key, token: token}, nil
}

type redisLock struct {
	client LockClient
	key    string
	token  string
}

func (l *redisLock) Unlock(ctx context.Context) error {
	if err := l.client.Eval(ctx, unlockScript, []string{l.key}, l.token).Err(); err != nil {
		return errs.Wrapf(err, "release scheduler lock %s", l.key)
	}
	return nil
}

// NewRedisClient connects to addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "connect to redis at %s", addr)
	}
	return client, nil
}
