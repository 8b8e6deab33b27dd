package tabular

import (
	"context"
	"errors"
	"strings"
	"syscall"
)

// Table 邏輯資料表名稱。spreadsheet 後端對應分頁名稱，
// warehouse 後端對應同名的 SQL 資料表。
type Table string

const (
	TableAuthentication   Table = "Authentication"
	TableDecentralization Table = "Ex Decentralization"
	TableStoreInfo        Table = "Ex Store_info"
	TableChurnHistory     Table = "Ex Churn History"
	TableActiveHistory    Table = "Ex Active History"
	TableChurnDatabase    Table = "Churn Database"
	TableActiveDatabase   Table = "Active Database"
	TableDropdownChurn    Table = "Dropdown Churn Action"
	TableDropdownActive   Table = "Dropdown Active Action"
	TableDropdownWhy      Table = "Dropdown Why"
)

// 各表的固定欄位範圍。欄位位置是對外契約，兩種後端都必須遵守。
const (
	RangeAuthentication   = "A:N"
	RangeDecentralization = "A:F"
	RangeStoreInfo        = "A:M"
	RangeChurnHistory     = "A:E"
	RangeActiveHistory    = "A:B"
	RangeChurnDatabase    = "A:K"
	RangeActiveDatabase   = "A:J"
	RangeDropdownChurn    = "A:B"
	RangeDropdownActive   = "A:A"
	RangeDropdownWhy      = "A:B"
)

// Source 是 Tabular Data Gateway 的抽象。
// 回傳的 rows 含表頭列，交由 Decode* 在 ingestion edge 處理。
type Source interface {
	// ReadRange 讀取整張表指定欄位範圍，依來源順序回傳
	ReadRange(ctx context.Context, table Table, columnRange string) ([][]string, error)
	// AppendRow 追加一列，回傳來源確認寫入的列數
	AppendRow(ctx context.Context, table Table, columnRange string, row []string) (int, error)
}

// IsConnReset 判斷 gateway 錯誤是否為連線被重置（對外回 503）
func IsConnReset(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	return strings.Contains(err.Error(), "connection reset")
}

// IsTimeout 判斷 gateway 錯誤是否為逾時
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
