package repository

import (
	"context"
	"fmt"
	"time"

	"winback/config"
	"winback/internal/core"
	client "winback/internal/database/client"
	"winback/internal/tabular"
	"winback/internal/telemetry"

	"google.golang.org/api/sheets/v4"
)

const defaultTimeout = 30 * time.Second

// SheetSource 以 Google Sheets values API 實作 tabular.Source
type SheetSource struct {
	trace   *telemetry.Trace
	metric  *telemetry.Metric
	client  *client.SheetsClient
	timeout time.Duration
}

func NewSheetSource(trace *telemetry.Trace, metric *telemetry.Metric, sheetsClient *client.SheetsClient, config *config.Configuration) *SheetSource {
	timeout := defaultTimeout
	if config.Gateway.TimeoutSeconds > 0 {
		timeout = time.Duration(config.Gateway.TimeoutSeconds) * time.Second
	}
	return &SheetSource{trace: trace, metric: metric, client: sheetsClient, timeout: timeout}
}

func (source *SheetSource) ReadRange(contextValue context.Context, table tabular.Table, columnRange string) (_ [][]string, returnedError error) {
	contextValue, span, endSpan := source.trace.WithSpan(contextValue, string(core.SpanGatewayRead))
	defer func() { endSpan(returnedError) }()

	contextValue, cancel := context.WithTimeout(contextValue, source.timeout)
	defer cancel()

	readRange := fmt.Sprintf("%s!%s", table, columnRange)
	response, err := source.client.Service().Spreadsheets.Values.
		Get(source.client.SpreadsheetID(), readRange).
		Context(contextValue).
		Do()
	if err != nil {
		returnedError = err
		if source.metric.GatewayReadsTotal != nil {
			source.metric.GatewayReadsTotal.WithLabelValues(string(table), "error").Inc()
		}
		return nil, returnedError
	}
	if source.metric.GatewayReadsTotal != nil {
		source.metric.GatewayReadsTotal.WithLabelValues(string(table), "ok").Inc()
	}

	rows := make([][]string, 0, len(response.Values))
	for _, rawRow := range response.Values {
		row := make([]string, 0, len(rawRow))
		for _, rawCell := range rawRow {
			row = append(row, cellToString(rawCell))
		}
		rows = append(rows, row)
	}

	source.trace.ApplyTraceAttributes(span, core.TraceGatewayMeta{
		Driver:   "sheets",
		Table:    string(table),
		Range:    columnRange,
		RowCount: len(rows),
	})
	return rows, nil
}

func (source *SheetSource) AppendRow(contextValue context.Context, table tabular.Table, columnRange string, row []string) (_ int, returnedError error) {
	contextValue, span, endSpan := source.trace.WithSpan(contextValue, string(core.SpanGatewayAppend))
	defer func() { endSpan(returnedError) }()

	contextValue, cancel := context.WithTimeout(contextValue, source.timeout)
	defer cancel()

	values := make([]interface{}, len(row))
	for i, cellValue := range row {
		values[i] = cellValue
	}
	appendRange := fmt.Sprintf("%s!%s", table, columnRange)
	response, err := source.client.Service().Spreadsheets.Values.
		Append(source.client.SpreadsheetID(), appendRange, &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption("RAW").
		Context(contextValue).
		Do()
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

	appended := 0
	if response.Updates != nil {
		appended = int(response.Updates.UpdatedRows)
	}
	source.trace.ApplyTraceAttributes(span, core.TraceGatewayMeta{
		Driver:   "sheets",
		Table:    string(table),
		Range:    columnRange,
		Appended: appended,
	})
	return appended, nil
}

// Sheets 回傳的 cell 是 interface{}，數值欄位不一定是字串
func cellToString(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
