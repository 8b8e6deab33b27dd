package service

import (
	"context"
	"errors"
	"net/http"
	"syscall"
	"testing"

	"winback/internal/core"
	cErr "winback/internal/pkg/error"
	"winback/internal/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource 記錄收到的讀寫參數，依表名回資料或錯誤
type fakeSource struct {
	rows    map[tabular.Table][][]string
	readErr map[tabular.Table]error

	appendTable tabular.Table
	appendRange string
	appendRow   []string
	appendCount int
	appendErr   error
}

func (f *fakeSource) ReadRange(_ context.Context, table tabular.Table, _ string) ([][]string, error) {
	if err := f.readErr[table]; err != nil {
		return nil, err
	}
	return f.rows[table], nil
}

func (f *fakeSource) AppendRow(_ context.Context, table tabular.Table, columnRange string, row []string) (int, error) {
	f.appendTable = table
	f.appendRange = columnRange
	f.appendRow = row
	if f.appendErr != nil {
		return 0, f.appendErr
	}
	return f.appendCount, nil
}

func TestTableReaderDecodesRows(t *testing.T) {
	source := &fakeSource{rows: map[tabular.Table][][]string{
		tabular.TableDecentralization: {
			{"picCode", "subteam", "role", "region", "team", "concatKey"},
			{"a.nguyen", "ST1", "Leader", "HCM", "T1", "HCM-T1"},
		},
	}}
	reader := NewTableReader(source)

	records, err := reader.AuthorizationRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, core.RoleLeader, records[0].Role)
}

func TestTableReaderGatewayErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"connection reset 轉 503", syscall.ECONNRESET, http.StatusServiceUnavailable, cErr.GATEWAY_RESET},
		{"timeout 轉 500", context.DeadlineExceeded, http.StatusInternalServerError, cErr.GATEWAY_TIMEOUT},
		{"其他錯誤轉 500", errors.New("boom"), http.StatusInternalServerError, cErr.GATEWAY_ERROR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{readErr: map[tabular.Table]error{
				tabular.TableStoreInfo: tt.err,
			}}
			_, err := NewTableReader(source).StoreRecords(context.Background())
			require.Error(t, err)

			var appErr *cErr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.HttpCode())
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestAppendActionTargetsKindTable(t *testing.T) {
	record := tabular.ActionRecord{StoreID: "S1", ChurnMonth: "12/2023", ActiveMonth: "1/2024"}

	source := &fakeSource{appendCount: 1}
	reader := NewTableReader(source)

	appended, err := reader.AppendAction(context.Background(), core.ActionKindChurn, record)
	require.NoError(t, err)
	assert.Equal(t, 1, appended)
	assert.Equal(t, tabular.TableChurnDatabase, source.appendTable)
	assert.Equal(t, tabular.RangeChurnDatabase, source.appendRange)
	assert.Len(t, source.appendRow, 11)

	appended, err = reader.AppendAction(context.Background(), core.ActionKindActive, record)
	require.NoError(t, err)
	assert.Equal(t, 1, appended)
	assert.Equal(t, tabular.TableActiveDatabase, source.appendTable)
	assert.Equal(t, tabular.RangeActiveDatabase, source.appendRange)
	assert.Len(t, source.appendRow, 10)
}

func TestAppendActionGatewayError(t *testing.T) {
	source := &fakeSource{appendErr: syscall.ECONNRESET}
	_, err := NewTableReader(source).AppendAction(context.Background(), core.ActionKindChurn, tabular.ActionRecord{})
	require.Error(t, err)

	var appErr *cErr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HttpCode())
}
