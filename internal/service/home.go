package service

import (
	"context"
	"encoding/json"
	"sort"

	"winback/internal/core"
	redisRepo "winback/internal/database/redis/repository"
	"winback/internal/dto"
	cErr "winback/internal/pkg/error"
	"winback/internal/tabular"
	"winback/internal/telemetry"
	"winback/utils/dates"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type HomeService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	tables *TableReader
	scope  *ScopeService
	cache  *redisRepo.ViewCacheRepository
}

func NewHomeService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	tables *TableReader,
	scope *ScopeService,
	cache *redisRepo.ViewCacheRepository,
) *HomeService {
	return &HomeService{trace: trace, logger: logger, tables: tables, scope: scope, cache: cache}
}

// BuildHomeView profile + 權限範圍內門市，門市依 lastOrderDate 新到舊。
// 帳號不在 Authentication 表回 404；有帳號但無可見門市回空清單。
func (s *HomeService) BuildHomeView(ctx context.Context, email string, force bool) (*dto.HomeResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	identity := core.NewIdentity(email)

	if !force {
		if cached, hit, err := s.cache.Get(ctx, core.CacheKeyHome, email); err != nil {
			s.logger.Warn("view cache get failed", zap.String("key", core.CacheKeyHome.For(email)), zap.Error(err))
		} else if hit {
			var resp dto.HomeResponseDto
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	// 三張表彼此無依賴，並行讀；任何一讀失敗整個視圖失敗
	var (
		authRecords          []tabular.AuthRecord
		authorizationRecords []tabular.AuthorizationRecord
		storeRecords         []tabular.StoreRecord
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		authRecords, err = s.tables.AuthRecords(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		authorizationRecords, err = s.tables.AuthorizationRecords(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		storeRecords, err = s.tables.StoreRecords(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	profile, found := findAuthByEmail(authRecords, email)
	if !found {
		return nil, cErr.AccountNotFound("no account for " + email)
	}
	authorization := s.scope.AuthorizationFor(identity, authorizationRecords)

	accessible := s.scope.ResolveAccessibleStores(identity, authorizationRecords, storeRecords)
	sort.SliceStable(accessible, func(i, j int) bool {
		return dates.ParseLenient(s.logger, accessible[i].LastOrderDate).
			After(dates.ParseLenient(s.logger, accessible[j].LastOrderDate))
	})

	stores := make([]dto.StoreViewDto, 0, len(accessible))
	for _, store := range accessible {
		stores = append(stores, dto.StoreViewDto{
			StoreID:              store.StoreID,
			StoreName:            store.StoreName,
			BuyerID:              store.BuyerID,
			CurrentPIC:           store.CurrentPIC,
			FullAddress:          store.FullAddress,
			LastOrderDate:        store.LastOrderDate,
			ChurnStatusThisMonth: store.ChurnStatusThisMonth,
		})
	}

	resp := &dto.HomeResponseDto{
		AuthInfo: dto.AuthInfoDto{
			FullName:  profile.FullName,
			Email:     profile.Email,
			Status:    profile.Status,
			Team:      profile.Team,
			PICCode:   identity.PICCode,
			Role:      string(authorization.Role),
			Region:    authorization.Region,
			Subteam:   authorization.Subteam,
			ConcatKey: authorization.ConcatKey,
		},
		Stores: stores,
	}

	s.trace.ApplyTraceAttributes(span, core.TraceScopeMeta{
		PICCode:    identity.PICCode,
		Role:       string(authorization.Role),
		Region:     authorization.Region,
		Subteam:    authorization.Subteam,
		StoreCount: len(stores),
		Strict:     s.scope.Strict(),
	})

	if body, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, core.CacheKeyHome, email, string(body)); err != nil {
			s.logger.Warn("view cache set failed", zap.String("key", core.CacheKeyHome.For(email)), zap.Error(err))
		}
	}
	return resp, nil
}
