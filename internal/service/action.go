package service

import (
	"context"
	"fmt"

	"winback/internal/core"
	redisRepo "winback/internal/database/redis/repository"
	"winback/internal/dto"
	cErr "winback/internal/pkg/error"
	"winback/internal/tabular"
	"winback/internal/telemetry"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ActionService 系統裡唯一會寫 gateway 的 service。
// 行動紀錄 append-only，沒有更新或刪除路徑。
type ActionService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	tables *TableReader
	scope  *ScopeService
	cache  *redisRepo.ViewCacheRepository
}

func NewActionService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	tables *TableReader,
	scope *ScopeService,
	cache *redisRepo.ViewCacheRepository,
) *ActionService {
	return &ActionService{trace: trace, logger: logger, tables: tables, scope: scope, cache: cache}
}

// RecordAction 驗證 → 單店權限 → append → 確認寫入列數 → 失效快取。
// 寫入確認不是剛好一列時回 WriteIncomplete，不當成功吞掉。
func (s *ActionService) RecordAction(ctx context.Context, kind core.ActionKind, req *dto.SubmitActionDto) (*dto.SubmitActionResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if kind != core.ActionKindChurn && kind != core.ActionKindActive {
		return nil, cErr.BadRequest(fmt.Sprintf("unknown submit type %q", kind))
	}

	identity := core.NewIdentity(req.Email)

	var (
		authorizationRecords []tabular.AuthorizationRecord
		storeRecords         []tabular.StoreRecord
	)
	group, groupCtx := errgroup.WithContext(ctx)
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

	if !s.scope.CanAccessStore(identity, req.StoreID, authorizationRecords, storeRecords) {
		return nil, cErr.PermissionDenied(fmt.Sprintf("%s has no access to store %s", identity.PICCode, req.StoreID))
	}

	authorization := s.scope.AuthorizationFor(identity, authorizationRecords)
	record := tabular.ActionRecord{
		StoreID:        req.StoreID,
		StoreName:      req.StoreName,
		ContactDate:    req.ContactDate,
		PIC:            identity.PICCode,
		Subteam:        authorization.Subteam,
		TypeOfContact:  req.TypeOfContact,
		Action:         req.Action,
		Note:           req.Note,
		WhyNotReawaken: req.WhyNotReawaken,
		ChurnMonth:     req.ChurnMonth,
		ActiveMonth:    req.ActiveMonth,
		LinkHubspot:    req.LinkHubspot,
	}

	appended, err := s.tables.AppendAction(ctx, kind, record)
	if err != nil {
		return nil, err
	}
	if appended != 1 {
		return nil, cErr.WriteIncomplete(fmt.Sprintf("expected 1 appended row, gateway confirmed %d", appended))
	}

	// 寫入成功後只失效此身分的 home 與 progress，不動其他人的快取
	if err := s.cache.Invalidate(ctx, identity.Email, core.CacheKeyHome, core.CacheKeyProgress); err != nil {
		s.logger.Warn("view cache invalidate failed", zap.String("email", identity.Email), zap.Error(err))
	}

	s.trace.ApplyTraceAttributes(span, core.TraceRecordActionMeta{
		StoreID:  req.StoreID,
		Kind:     string(kind),
		PICCode:  identity.PICCode,
		Appended: appended,
	})
	return &dto.SubmitActionResponseDto{RowsAppended: appended}, nil
}
