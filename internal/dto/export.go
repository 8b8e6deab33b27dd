package dto

import "time"

// 匯出目前權限範圍內的資料快照
type ExportDataDto struct {
	Email string `json:"email" binding:"required,email"`
	Note  string `json:"note,omitempty"`
}

type ExportDataResponseDto struct {
	SnapshotID string    `json:"snapshotId"`
	StoreCount int       `json:"storeCount"`
	CreatedAt  time.Time `json:"createdAt"`
}
