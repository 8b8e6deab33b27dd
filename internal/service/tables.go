package service

import (
	"context"
	"fmt"

	"winback/internal/core"
	cErr "winback/internal/pkg/error"
	"winback/internal/tabular"
)

// TableReader 讀各邏輯表並在 ingestion edge 解成 typed record。
// gateway 錯誤在這裡統一映射成應用層錯誤。
type TableReader struct {
	source tabular.Source
}

func NewTableReader(source tabular.Source) *TableReader {
	return &TableReader{source: source}
}

func gatewayError(table tabular.Table, err error) error {
	switch {
	case tabular.IsConnReset(err):
		return cErr.GatewayReset(fmt.Sprintf("gateway %s: %v", table, err))
	case tabular.IsTimeout(err):
		return cErr.GatewayTimeout(fmt.Sprintf("gateway %s: %v", table, err))
	default:
		return cErr.GatewayError(fmt.Sprintf("gateway %s: %v", table, err))
	}
}

func (r *TableReader) AuthRecords(ctx context.Context) ([]tabular.AuthRecord, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableAuthentication, tabular.RangeAuthentication)
	if err != nil {
		return nil, gatewayError(tabular.TableAuthentication, err)
	}
	return tabular.DecodeAuthRows(rows), nil
}

func (r *TableReader) AuthorizationRecords(ctx context.Context) ([]tabular.AuthorizationRecord, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableDecentralization, tabular.RangeDecentralization)
	if err != nil {
		return nil, gatewayError(tabular.TableDecentralization, err)
	}
	return tabular.DecodeAuthorizationRows(rows), nil
}

func (r *TableReader) StoreRecords(ctx context.Context) ([]tabular.StoreRecord, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableStoreInfo, tabular.RangeStoreInfo)
	if err != nil {
		return nil, gatewayError(tabular.TableStoreInfo, err)
	}
	return tabular.DecodeStoreRows(rows), nil
}

func (r *TableReader) ChurnHistory(ctx context.Context) ([]tabular.ChurnHistoryEntry, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableChurnHistory, tabular.RangeChurnHistory)
	if err != nil {
		return nil, gatewayError(tabular.TableChurnHistory, err)
	}
	return tabular.DecodeChurnHistoryRows(rows), nil
}

func (r *TableReader) ActiveHistory(ctx context.Context) ([]tabular.ActiveHistoryEntry, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableActiveHistory, tabular.RangeActiveHistory)
	if err != nil {
		return nil, gatewayError(tabular.TableActiveHistory, err)
	}
	return tabular.DecodeActiveHistoryRows(rows), nil
}

func (r *TableReader) ChurnActions(ctx context.Context) ([]tabular.ActionRecord, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableChurnDatabase, tabular.RangeChurnDatabase)
	if err != nil {
		return nil, gatewayError(tabular.TableChurnDatabase, err)
	}
	return tabular.DecodeChurnActionRows(rows), nil
}

func (r *TableReader) ActiveActions(ctx context.Context) ([]tabular.ActionRecord, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableActiveDatabase, tabular.RangeActiveDatabase)
	if err != nil {
		return nil, gatewayError(tabular.TableActiveDatabase, err)
	}
	return tabular.DecodeActiveActionRows(rows), nil
}

func (r *TableReader) DropdownChurnActions(ctx context.Context) ([]tabular.ChurnActionOption, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableDropdownChurn, tabular.RangeDropdownChurn)
	if err != nil {
		return nil, gatewayError(tabular.TableDropdownChurn, err)
	}
	return tabular.DecodeDropdownChurnRows(rows), nil
}

func (r *TableReader) DropdownActiveActions(ctx context.Context) ([]string, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableDropdownActive, tabular.RangeDropdownActive)
	if err != nil {
		return nil, gatewayError(tabular.TableDropdownActive, err)
	}
	return tabular.DecodeDropdownActiveRows(rows), nil
}

func (r *TableReader) DropdownWhyReasons(ctx context.Context) ([]tabular.WhyReasonOption, error) {
	rows, err := r.source.ReadRange(ctx, tabular.TableDropdownWhy, tabular.RangeDropdownWhy)
	if err != nil {
		return nil, gatewayError(tabular.TableDropdownWhy, err)
	}
	return tabular.DecodeDropdownWhyRows(rows), nil
}

// AppendAction 追加一筆行動紀錄到 kind 對應的資料表
func (r *TableReader) AppendAction(ctx context.Context, kind core.ActionKind, record tabular.ActionRecord) (int, error) {
	table, columnRange := tabular.TableChurnDatabase, tabular.RangeChurnDatabase
	if kind == core.ActionKindActive {
		table, columnRange = tabular.TableActiveDatabase, tabular.RangeActiveDatabase
	}
	appended, err := r.source.AppendRow(ctx, table, columnRange, record.EncodeRow(kind))
	if err != nil {
		return 0, gatewayError(table, err)
	}
	return appended, nil
}
