package service

import (
	"context"
	"encoding/json"

	"winback/internal/core"
	redisRepo "winback/internal/database/redis/repository"
	"winback/internal/dto"
	"winback/internal/telemetry"

	"go.uber.org/zap"
)

type DropdownService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	tables *TableReader
	cache  *redisRepo.ViewCacheRepository
}

func NewDropdownService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	tables *TableReader,
	cache *redisRepo.ViewCacheRepository,
) *DropdownService {
	return &DropdownService{trace: trace, logger: logger, tables: tables, cache: cache}
}

// cachedOptions 下拉選單共用的 cache-aside 讀取
func cachedOptions[T any](
	ctx context.Context,
	s *DropdownService,
	key core.CacheKey,
	load func(context.Context) (T, error),
) (T, error) {
	var zero T
	if cached, hit, err := s.cache.Get(ctx, key, ""); err != nil {
		s.logger.Warn("view cache get failed", zap.String("key", key.String()), zap.Error(err))
	} else if hit {
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			return value, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return zero, err
	}
	if body, err := json.Marshal(value); err == nil {
		if err := s.cache.Set(ctx, key, "", string(body)); err != nil {
			s.logger.Warn("view cache set failed", zap.String("key", key.String()), zap.Error(err))
		}
	}
	return value, nil
}

func (s *DropdownService) ChurnActions(ctx context.Context) (*dto.DropdownChurnActionsResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	options, err := cachedOptions(ctx, s, core.CacheKeyDropdownChurn, s.tables.DropdownChurnActions)
	if err != nil {
		return nil, err
	}
	return &dto.DropdownChurnActionsResponseDto{Options: options}, nil
}

func (s *DropdownService) ActiveActions(ctx context.Context) (*dto.DropdownActiveActionsResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	options, err := cachedOptions(ctx, s, core.CacheKeyDropdownActive, s.tables.DropdownActiveActions)
	if err != nil {
		return nil, err
	}
	return &dto.DropdownActiveActionsResponseDto{Options: options}, nil
}

func (s *DropdownService) WhyReasons(ctx context.Context) (*dto.DropdownWhyReasonsResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	options, err := cachedOptions(ctx, s, core.CacheKeyDropdownReasons, s.tables.DropdownWhyReasons)
	if err != nil {
		return nil, err
	}
	return &dto.DropdownWhyReasonsResponseDto{Options: options}, nil
}

// WarmCaches 給 cron 用：把三個下拉選單預熱進快取
func (s *DropdownService) WarmCaches(ctx context.Context) error {
	if _, err := s.ChurnActions(ctx); err != nil {
		return err
	}
	if _, err := s.ActiveActions(ctx); err != nil {
		return err
	}
	if _, err := s.WhyReasons(ctx); err != nil {
		return err
	}
	return nil
}
