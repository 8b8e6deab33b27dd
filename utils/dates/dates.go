package dates

import (
	"time"

	"go.uber.org/zap"
)

// Epoch 壞日期的 sentinel：排序時會落到最舊，而不是讓整批彙整失敗
var Epoch = time.Unix(0, 0).UTC()

const (
	layoutDMY = "02/01/2006"
	layoutISO = "2006-01-02"
	layoutMY  = "1/2006"
)

// Parse 接受 DD/MM/YYYY 或 YYYY-MM-DD。
// ok=false 代表無法解析（含空字串），回傳 Epoch。
func Parse(value string) (time.Time, bool) {
	if value == "" {
		return Epoch, false
	}
	if t, err := time.Parse(layoutDMY, value); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(layoutISO, value); err == nil {
		return t.UTC(), true
	}
	return Epoch, false
}

// ParseLenient 同 Parse，但解析失敗時記 warning。
// 空字串視為「沒有日期」，不告警。
func ParseLenient(logger *zap.Logger, value string) time.Time {
	t, ok := Parse(value)
	if !ok && value != "" && logger != nil {
		logger.Warn("cannot parse date, falling back to epoch", zap.String("value", value))
	}
	return t
}

// ParseMonth 解析 churn/active 月份（M/YYYY 或 MM/YYYY），失敗回 Epoch
func ParseMonth(value string) time.Time {
	if value == "" {
		return Epoch
	}
	if t, err := time.Parse(layoutMY, value); err == nil {
		return t.UTC()
	}
	return Epoch
}

// Canonical 轉為 YYYY-MM-DD
func Canonical(t time.Time) string {
	return t.Format(layoutISO)
}
