package repository

import (
	"context"
	"errors"
	"time"

	"winback/config"
	"winback/internal/core"
	client "winback/internal/database/client"
	"winback/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = time.Hour

// ViewCacheRepository 回應快取：以 view+身分 為 key 存 JSON 字串，
// 固定 TTL，寫入行動後由 service 主動失效
type ViewCacheRepository struct {
	trace  *telemetry.Trace
	metric *telemetry.Metric
	client *redis.Client
	ttl    time.Duration
}

func NewViewCacheRepository(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	redisClient *client.RedisClient,
	config *config.Configuration,
) *ViewCacheRepository {
	ttl := defaultTTL
	if config.Cache.TTLSeconds > 0 {
		ttl = time.Duration(config.Cache.TTLSeconds) * time.Second
	}
	return &ViewCacheRepository{
		trace:  trace,
		metric: metric,
		client: redisClient.Client(),
		ttl:    ttl,
	}
}

func keyFor(base core.CacheKey, suffix string) string {
	if suffix == "" {
		return string(base)
	}
	return base.For(suffix)
}

// Get 回傳 (value, hit, err)；key 不存在不是錯誤
func (repository *ViewCacheRepository) Get(contextValue context.Context, base core.CacheKey, suffix string) (_ string, _ bool, returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	key := keyFor(base, suffix)
	value, err := repository.client.Get(contextValue, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			repository.trace.ApplyTraceAttributes(span, core.TraceCacheMeta{Key: key, Op: "get", Hit: false})
			if repository.metric.CacheMissesTotal != nil {
				repository.metric.CacheMissesTotal.WithLabelValues(string(base)).Inc()
			}
			return "", false, nil
		}
		returnedError = err
		return "", false, returnedError
	}

	repository.trace.ApplyTraceAttributes(span, core.TraceCacheMeta{Key: key, Op: "get", Hit: true})
	if repository.metric.CacheHitsTotal != nil {
		repository.metric.CacheHitsTotal.WithLabelValues(string(base)).Inc()
	}
	return value, true, nil
}

func (repository *ViewCacheRepository) Set(contextValue context.Context, base core.CacheKey, suffix string, value string) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	key := keyFor(base, suffix)
	repository.trace.ApplyTraceAttributes(span, core.TraceCacheMeta{Key: key, Op: "set"})
	returnedError = repository.client.Set(contextValue, key, value, repository.ttl).Err()
	return returnedError
}

// Invalidate 刪掉同一身分底下的多個 view 快取
func (repository *ViewCacheRepository) Invalidate(contextValue context.Context, suffix string, bases ...core.CacheKey) (returnedError error) {
	if len(bases) == 0 {
		return nil
	}
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	keys := make([]string, len(bases))
	for i, base := range bases {
		keys[i] = keyFor(base, suffix)
	}
	repository.trace.ApplyTraceAttributes(span, core.TraceCacheMeta{Key: keys[0], Op: "delete"})
	returnedError = repository.client.Del(contextValue, keys...).Err()
	return returnedError
}
