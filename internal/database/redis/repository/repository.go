package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	viewCacheRepo *ViewCacheRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	viewCacheRepo *ViewCacheRepository,
) *RedisRepository {
	return &RedisRepository{
		viewCacheRepo: viewCacheRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewViewCacheRepository,
	NewRedisRepository)
