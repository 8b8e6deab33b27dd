package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"winback/config"
	"winback/internal/core"
	client "winback/internal/database/client"
	"winback/internal/tabular"
	"winback/internal/telemetry"
)

const defaultTimeout = 30 * time.Second

// 邏輯表對應的 SQL 表與欄位順序。
// 欄位順序必須與 spreadsheet 的欄位位置契約一致，不可調整。
var warehouseTables = map[tabular.Table]struct {
	name    string
	columns []string
}{
	tabular.TableAuthentication: {
		name: "authentication",
		columns: []string{
			"employee_id", "full_name", "email", "display_name", "team",
			"region", "subteam", "role_title", "manager", "start_date",
			"status", "note", "updated_at", "password",
		},
	},
	tabular.TableDecentralization: {
		name:    "decentralization",
		columns: []string{"pic_code", "subteam", "role", "region", "team", "concat_key"},
	},
	tabular.TableStoreInfo: {
		name: "store_info",
		columns: []string{
			"store_id", "store_name", "buyer_id", "buyer_name", "region",
			"current_pic", "previous_pic", "subteam", "segment", "full_address",
			"first_order_date", "last_order_date", "churn_status_this_month",
		},
	},
	tabular.TableChurnHistory: {
		name:    "churn_history",
		columns: []string{"store_id", "churn_month", "churn_week", "type_of_churn", "reason"},
	},
	tabular.TableActiveHistory: {
		name:    "active_history",
		columns: []string{"store_id", "active_month"},
	},
	tabular.TableChurnDatabase: {
		name: "churn_database",
		columns: []string{
			"store_id", "store_name", "contact_date", "pic", "subteam",
			"type_of_contact", "action", "note", "why_not_reawaken",
			"churn_month", "link_hubspot",
		},
	},
	tabular.TableActiveDatabase: {
		name: "active_database",
		columns: []string{
			"store_id", "store_name", "contact_date", "pic", "subteam",
			"type_of_contact", "action", "note", "active_month", "link_hubspot",
		},
	},
	tabular.TableDropdownChurn: {
		name:    "dropdown_churn_action",
		columns: []string{"type_of_churn", "churn_action"},
	},
	tabular.TableDropdownActive: {
		name:    "dropdown_active_action",
		columns: []string{"active_action"},
	},
	tabular.TableDropdownWhy: {
		name:    "dropdown_why",
		columns: []string{"type_of_churn", "why_not_reawaken"},
	},
}

// WarehouseSource 以 MySQL 實作 tabular.Source。
// 回傳值補上一列欄名作為表頭，與 spreadsheet 後端的列形狀一致。
type WarehouseSource struct {
	trace   *telemetry.Trace
	metric  *telemetry.Metric
	db      *sql.DB
	timeout time.Duration
}

func NewWarehouseSource(trace *telemetry.Trace, metric *telemetry.Metric, warehouseClient *client.WarehouseClient, config *config.Configuration) *WarehouseSource {
	timeout := defaultTimeout
	if config.Gateway.TimeoutSeconds > 0 {
		timeout = time.Duration(config.Gateway.TimeoutSeconds) * time.Second
	}
	return &WarehouseSource{trace: trace, metric: metric, db: warehouseClient.DB(), timeout: timeout}
}

func (source *WarehouseSource) ReadRange(contextValue context.Context, table tabular.Table, columnRange string) (_ [][]string, returnedError error) {
	contextValue, span, endSpan := source.trace.WithSpan(contextValue, string(core.SpanGatewayRead))
	defer func() { endSpan(returnedError) }()

	spec, ok := warehouseTables[table]
	if !ok {
		returnedError = fmt.Errorf("unknown warehouse table: %s", table)
		return nil, returnedError
	}
	columns, err := limitColumns(spec.columns, columnRange)
	if err != nil {
		returnedError = err
		return nil, returnedError
	}

	contextValue, cancel := context.WithTimeout(contextValue, source.timeout)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), spec.name)
	sqlRows, err := source.db.QueryContext(contextValue, query)
	if err != nil {
		returnedError = err
		if source.metric.GatewayReadsTotal != nil {
			source.metric.GatewayReadsTotal.WithLabelValues(string(table), "error").Inc()
		}
		return nil, returnedError
	}
	defer sqlRows.Close()

	rows := [][]string{columns}
	for sqlRows.Next() {
		cells := make([]sql.NullString, len(columns))
		scanTargets := make([]interface{}, len(columns))
		for i := range cells {
			scanTargets[i] = &cells[i]
		}
		if err := sqlRows.Scan(scanTargets...); err != nil {
			returnedError = err
			return nil, returnedError
		}
		row := make([]string, len(columns))
		for i, cellValue := range cells {
			row[i] = cellValue.String
		}
		rows = append(rows, row)
	}
	if err := sqlRows.Err(); err != nil {
		returnedError = err
		return nil, returnedError
	}
	if source.metric.GatewayReadsTotal != nil {
		source.metric.GatewayReadsTotal.WithLabelValues(string(table), "ok").Inc()
	}

	source.trace.ApplyTraceAttributes(span, core.TraceGatewayMeta{
		Driver:   "warehouse",
		Table:    string(table),
		Range:    columnRange,
		RowCount: len(rows),
	})
	return rows, nil
}

func (source *WarehouseSource) AppendRow(contextValue context.Context, table tabular.Table, columnRange string, row []string) (_ int, returnedError error) {
	contextValue, span, endSpan := source.trace.WithSpan(contextValue, string(core.SpanGatewayAppend))
	defer func() { endSpan(returnedError) }()

	spec, ok := warehouseTables[table]
	if !ok {
		returnedError = fmt.Errorf("unknown warehouse table: %s", table)
		return 0, returnedError
	}
	if len(row) > len(spec.columns) {
		returnedError = fmt.Errorf("row has %d cells, table %s has %d columns", len(row), table, len(spec.columns))
		return 0, returnedError
	}
	columns := spec.columns[:len(row)]

	contextValue, cancel := context.WithTimeout(contextValue, source.timeout)
	defer cancel()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(row)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", spec.name, strings.Join(columns, ", "), placeholders)
	args := make([]interface{}, len(row))
	for i, cellValue := range row {
		args[i] = cellValue
	}
	result, err := source.db.ExecContext(contextValue, query, args...)
	if err != nil {
		returnedError = err
		if source.metric.GatewayAppendsTotal != nil {
			source.metric.GatewayAppendsTotal.WithLabelValues(string(table), "error").Inc()
		}
		return 0, returnedError
	}
	if source.metric.GatewayAppendsTotal != nil {
		source.metric.GatewayAppendsTotal.WithLabelValues(string(table), "ok").Inc()
	}
	affected, err := result.RowsAffected()
	if err != nil {
		returnedError = err
		return 0, returnedError
	}

	source.trace.ApplyTraceAttributes(span, core.TraceGatewayMeta{
		Driver:   "warehouse",
		Table:    string(table),
		Range:    columnRange,
		Appended: int(affected),
	})
	return int(affected), nil
}

// limitColumns 把 "A:J" 這種欄位範圍換算成要選取的欄位數
func limitColumns(columns []string, columnRange string) ([]string, error) {
	parts := strings.Split(columnRange, ":")
	if len(parts) != 2 || len(parts[1]) != 1 {
		return nil, fmt.Errorf("unsupported column range: %s", columnRange)
	}
	count := int(parts[1][0]-'A') + 1
	if count < 1 {
		return nil, fmt.Errorf("unsupported column range: %s", columnRange)
	}
	if count > len(columns) {
		count = len(columns)
	}
	return columns[:count], nil
}
