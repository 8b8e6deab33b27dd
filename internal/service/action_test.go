package service

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"

	"winback/config"
	"winback/internal/core"
	client "winback/internal/database/client"
	redisRepo "winback/internal/database/redis/repository"
	"winback/internal/dto"
	cErr "winback/internal/pkg/error"
	"winback/internal/tabular"
	"winback/internal/telemetry"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func actionFixtureSource() *fakeSource {
	storeRow := func(storeID, currentPIC string) []string {
		row := make([]string, 13)
		row[0] = storeID
		row[5] = currentPIC
		return row
	}
	return &fakeSource{
		appendCount: 1,
		rows: map[tabular.Table][][]string{
			tabular.TableDecentralization: {
				{"picCode", "subteam", "role", "region", "team", "concatKey"},
				{"member.hcm", "ST1", "Member", "HCM", "T1", "HCM-T1"},
				{"other.hcm", "ST2", "Member", "HCM", "T2", "HCM-T2"},
			},
			tabular.TableStoreInfo: {
				make([]string, 13),
				storeRow("S1", "member.hcm"),
				storeRow("S3", "other.hcm"),
			},
		},
	}
}

func submitActionDto(email, storeID string) *dto.SubmitActionDto {
	return &dto.SubmitActionDto{
		Email:         email,
		StoreID:       storeID,
		ContactDate:   "2024-06-01",
		TypeOfContact: "Call",
		Action:        "Visit",
		ChurnMonth:    "12/2023",
	}
}

func actionTestService(t *testing.T, source *fakeSource, cache *redisRepo.ViewCacheRepository) *ActionService {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return &ActionService{
		trace:  trace,
		logger: zap.NewNop(),
		tables: NewTableReader(source),
		scope:  newScope(true),
		cache:  cache,
	}
}

// 失效路徑要打真的 redis client，用 miniredis 當測試後端
func viewCacheRepository(t *testing.T) *redisRepo.ViewCacheRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	host, portValue, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portValue)
	require.NoError(t, err)

	conf := &config.Configuration{Redis: config.Redis{Host: host, Port: port}}
	redisClient, cleanup, err := client.NewRedisClient(zap.NewNop(), conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	return redisRepo.NewViewCacheRepository(trace, telemetry.NewMetric(nil), redisClient, conf)
}

func TestRecordActionRejectsUnknownKind(t *testing.T) {
	s := actionTestService(t, actionFixtureSource(), nil)

	_, err := s.RecordAction(context.Background(), core.ActionKind("bogus"), submitActionDto("member.hcm@corp.vn", "S1"))
	require.Error(t, err)

	var appErr *cErr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HttpCode())
}

// 權限不足在 append 與快取之前就擋下，cache 給 nil 也不能 panic
func TestRecordActionPermissionDenied(t *testing.T) {
	source := actionFixtureSource()
	s := actionTestService(t, source, nil)

	_, err := s.RecordAction(context.Background(), core.ActionKindChurn, submitActionDto("member.hcm@corp.vn", "S3"))
	require.Error(t, err)

	var appErr *cErr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HttpCode())
	assert.Equal(t, cErr.PERMISSION_DENIED, appErr.ErrorCode())

	// 沒寫任何東西進 gateway
	assert.Empty(t, source.appendTable)
}

func TestRecordActionWriteConfirmationMismatch(t *testing.T) {
	tests := []struct {
		name     string
		appended int
	}{
		{"確認 0 列", 0},
		{"確認 2 列", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := actionFixtureSource()
			source.appendCount = tt.appended
			s := actionTestService(t, source, nil)

			_, err := s.RecordAction(context.Background(), core.ActionKindChurn, submitActionDto("member.hcm@corp.vn", "S1"))
			require.Error(t, err)

			var appErr *cErr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusInternalServerError, appErr.HttpCode())
			assert.Equal(t, cErr.WRITE_INCOMPLETE, appErr.ErrorCode())
		})
	}
}

// 寫入成功只失效此身分的 home 與 progress，login 與別人的快取不動
func TestRecordActionInvalidatesOwnViewCache(t *testing.T) {
	ctx := context.Background()
	cache := viewCacheRepository(t)
	actor := "member.hcm@corp.vn"
	bystander := "other.hcm@corp.vn"

	for _, seed := range []struct {
		base  core.CacheKey
		email string
	}{
		{core.CacheKeyHome, actor},
		{core.CacheKeyProgress, actor},
		{core.CacheKeyLogin, actor},
		{core.CacheKeyHome, bystander},
		{core.CacheKeyProgress, bystander},
	} {
		require.NoError(t, cache.Set(ctx, seed.base, seed.email, "cached"))
	}

	s := actionTestService(t, actionFixtureSource(), cache)
	res, err := s.RecordAction(ctx, core.ActionKindChurn, submitActionDto(actor, "S1"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.RowsAppended)

	expectHit := func(base core.CacheKey, email string, want bool) {
		t.Helper()
		_, hit, err := cache.Get(ctx, base, email)
		require.NoError(t, err)
		assert.Equal(t, want, hit, "%s for %s", base, email)
	}
	expectHit(core.CacheKeyHome, actor, false)
	expectHit(core.CacheKeyProgress, actor, false)
	expectHit(core.CacheKeyLogin, actor, true)
	expectHit(core.CacheKeyHome, bystander, true)
	expectHit(core.CacheKeyProgress, bystander, true)
}
