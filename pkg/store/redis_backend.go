package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errUtils "github.com/cloudmesh/yamldb/errors"
	u "github.com/cloudmesh/yamldb/pkg/utils"
)

// RedisClient is the interface for the Redis client used by RedisBackend,
// allowing the client to be replaced in tests.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// RedisBackend stores the document as a YAML blob under a single key.
type RedisBackend struct {
	redisClient RedisClient
	ctx         context.Context
	url         string
	key         string
	closed      bool
}

var _ Backend = (*RedisBackend)(nil)

// NewRedisBackend creates a backend connected to the Redis URI.
// The document lives under `<prefix><document_name>`.
func NewRedisBackend(url string, opts Options) (Backend, error) {
	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUtils.ErrInvalidBackend, err)
	}

	return &RedisBackend{
		redisClient: redis.NewClient(redisOpts),
		ctx:         context.Background(),
		url:         url,
		key:         opts.prefix() + opts.documentName(),
	}, nil
}

func (b *RedisBackend) Load() (map[string]any, bool, error) {
	if b.closed {
		return nil, false, errUtils.ErrBackendClosed
	}

	blob, err := b.redisClient.Get(b.ctx, b.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, b.key, err)
	}

	doc, err := u.UnmarshalYAML[any](blob)
	if err != nil {
		return nil, false, fmt.Errorf("%w '%s': %v", errUtils.ErrLoadDocument, b.key, err)
	}

	switch v := doc.(type) {
	case nil:
		return map[string]any{}, true, nil
	case map[string]any:
		return v, true, nil
	default:
		return nil, false, fmt.Errorf("%w: '%s'", errUtils.ErrDocumentNotMap, b.key)
	}
}

func (b *RedisBackend) Save(data map[string]any) error {
	if b.closed {
		return errUtils.ErrBackendClosed
	}

	y, err := u.ConvertToYAML(data)
	if err != nil {
		return fmt.Errorf("%w '%s': %v", errUtils.ErrSaveDocument, b.key, err)
	}

	if err := b.redisClient.Set(b.ctx, b.key, y, 0).Err(); err != nil {
		return fmt.Errorf("%w '%s': %v", errUtils.ErrSaveDocument, b.key, err)
	}
	return nil
}

func (b *RedisBackend) Delete() error {
	if b.closed {
		return errUtils.ErrBackendClosed
	}
	if err := b.redisClient.Del(b.ctx, b.key).Err(); err != nil {
		return fmt.Errorf("%w '%s': %v", errUtils.ErrDeleteDocument, b.key, err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.redisClient.Close()
}

func (b *RedisBackend) Name() string {
	return b.url
}
