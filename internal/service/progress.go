package service

import (
	"context"
	"encoding/json"
	"sort"

	"winback/internal/core"
	redisRepo "winback/internal/database/redis/repository"
	"winback/internal/dto"
	"winback/internal/tabular"
	"winback/internal/telemetry"
	"winback/utils/dates"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ProgressService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	tables *TableReader
	scope  *ScopeService
	cache  *redisRepo.ViewCacheRepository
}

func NewProgressService(
	trace *telemetry.Trace,
	logger *zap.Logger,
	tables *TableReader,
	scope *ScopeService,
	cache *redisRepo.ViewCacheRepository,
) *ProgressService {
	return &ProgressService{trace: trace, logger: logger, tables: tables, scope: scope, cache: cache}
}

// BuildProgressView 每間可見門市的 churn/active 時間軸。
// churn episode 一律輸出（沒有行動也輸出空清單）；active 月份只在
// 至少有一筆行動時輸出——這個不對稱是前端「待跟進」訊號的依據。
func (s *ProgressService) BuildProgressView(ctx context.Context, email string, force bool) (*dto.ProgressResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	identity := core.NewIdentity(email)

	if !force {
		if cached, hit, err := s.cache.Get(ctx, core.CacheKeyProgress, email); err != nil {
			s.logger.Warn("view cache get failed", zap.String("key", core.CacheKeyProgress.For(email)), zap.Error(err))
		} else if hit {
			var resp dto.ProgressResponseDto
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	// 六張表彼此無依賴，並行讀；任何一讀失敗整個視圖失敗，不回部分結果
	var (
		authorizationRecords []tabular.AuthorizationRecord
		storeRecords         []tabular.StoreRecord
		churnHistory         []tabular.ChurnHistoryEntry
		activeHistory        []tabular.ActiveHistoryEntry
		churnActions         []tabular.ActionRecord
		activeActions        []tabular.ActionRecord
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
	group.Go(func() (err error) {
		churnHistory, err = s.tables.ChurnHistory(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		activeHistory, err = s.tables.ActiveHistory(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		churnActions, err = s.tables.ChurnActions(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		activeActions, err = s.tables.ActiveActions(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	accessible := s.scope.ResolveAccessibleStores(identity, authorizationRecords, storeRecords)

	progress := make(map[string][]dto.ProgressEntryDto)
	for _, store := range accessible {
		entries := s.storeEntries(store.StoreID, churnHistory, activeHistory, churnActions, activeActions)
		if len(entries) == 0 {
			// 沒有任何歷史的門市不進結果，不放空陣列
			continue
		}
		progress[store.StoreID] = entries
	}

	resp := &dto.ProgressResponseDto{Progress: progress}

	s.trace.ApplyTraceAttributes(span, core.TraceScopeMeta{
		PICCode:    identity.PICCode,
		StoreCount: len(progress),
		Strict:     s.scope.Strict(),
	})

	if body, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, core.CacheKeyProgress, email, string(body)); err != nil {
			s.logger.Warn("view cache set failed", zap.String("key", core.CacheKeyProgress.For(email)), zap.Error(err))
		}
	}
	return resp, nil
}

func (s *ProgressService) storeEntries(
	storeID string,
	churnHistory []tabular.ChurnHistoryEntry,
	activeHistory []tabular.ActiveHistoryEntry,
	churnActions []tabular.ActionRecord,
	activeActions []tabular.ActionRecord,
) []dto.ProgressEntryDto {
	var entries []dto.ProgressEntryDto

	churnIndex := 0
	for _, episode := range churnHistory {
		if episode.StoreID != storeID {
			continue
		}
		churnIndex++
		entries = append(entries, dto.ProgressEntryDto{
			Month:       episode.ChurnMonth,
			ChurnIndex:  churnIndex,
			TypeOfChurn: episode.TypeOfChurn,
			Reason:      episode.Reason,
			Actions:     s.matchingActions(churnActions, storeID, episode.ChurnMonth, actionChurnMonth),
		})
	}

	// activeIndex 依歷史列編號；沒有行動的月份不輸出，編號留洞
	activeIndex := 0
	for _, month := range activeHistory {
		if month.StoreID != storeID {
			continue
		}
		activeIndex++
		actions := s.matchingActions(activeActions, storeID, month.ActiveMonth, actionActiveMonth)
		if len(actions) == 0 {
			continue
		}
		entries = append(entries, dto.ProgressEntryDto{
			Month:       month.ActiveMonth,
			ActiveIndex: activeIndex,
			Actions:     actions,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return dates.ParseMonth(entries[i].Month).After(dates.ParseMonth(entries[j].Month))
	})
	return entries
}

func actionChurnMonth(a tabular.ActionRecord) string  { return a.ChurnMonth }
func actionActiveMonth(a tabular.ActionRecord) string { return a.ActiveMonth }

// matchingActions 同店同月份的行動紀錄，contactDate 新到舊
func (s *ProgressService) matchingActions(
	actions []tabular.ActionRecord,
	storeID string,
	month string,
	monthOf func(tabular.ActionRecord) string,
) []dto.ActionViewDto {
	matched := make([]dto.ActionViewDto, 0)
	for _, action := range actions {
		if action.StoreID != storeID || monthOf(action) != month {
			continue
		}
		matched = append(matched, dto.ActionViewDto{
			StoreID:        action.StoreID,
			StoreName:      action.StoreName,
			ContactDate:    action.ContactDate,
			PIC:            action.PIC,
			Subteam:        action.Subteam,
			TypeOfContact:  action.TypeOfContact,
			Action:         action.Action,
			Note:           action.Note,
			WhyNotReawaken: action.WhyNotReawaken,
			ChurnMonth:     action.ChurnMonth,
			ActiveMonth:    action.ActiveMonth,
			LinkHubspot:    action.LinkHubspot,
		})
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return dates.ParseLenient(s.logger, matched[i].ContactDate).
			After(dates.ParseLenient(s.logger, matched[j].ContactDate))
	})
	return matched
}

// ActiveHistoryForStore 單一門市的 active 月份，新到舊
func (s *ProgressService) ActiveHistoryForStore(ctx context.Context, storeID string) (*dto.ActiveHistoryResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if cached, hit, err := s.cache.Get(ctx, core.CacheKeyActiveHistory, storeID); err != nil {
		s.logger.Warn("view cache get failed", zap.String("key", core.CacheKeyActiveHistory.For(storeID)), zap.Error(err))
	} else if hit {
		var resp dto.ActiveHistoryResponseDto
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	activeHistory, err := s.tables.ActiveHistory(ctx)
	if err != nil {
		return nil, err
	}

	months := make([]string, 0)
	for _, entry := range activeHistory {
		if entry.StoreID == storeID {
			months = append(months, entry.ActiveMonth)
		}
	}
	sort.SliceStable(months, func(i, j int) bool {
		return dates.ParseMonth(months[i]).After(dates.ParseMonth(months[j]))
	})

	resp := &dto.ActiveHistoryResponseDto{StoreID: storeID, ActiveMonths: months}
	if body, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, core.CacheKeyActiveHistory, storeID, string(body)); err != nil {
			s.logger.Warn("view cache set failed", zap.String("key", core.CacheKeyActiveHistory.For(storeID)), zap.Error(err))
		}
	}
	return resp, nil
}
