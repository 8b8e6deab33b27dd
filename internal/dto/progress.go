package dto

// Progress 視圖請求；?force=true 略過快取
type ProgressDto struct {
	Email string `json:"email" binding:"required,email"`
}

type ActionViewDto struct {
	StoreID        string `json:"storeId"`
	StoreName      string `json:"storeName,omitempty"`
	ContactDate    string `json:"contactDate"`
	PIC            string `json:"pic"`
	Subteam        string `json:"subteam,omitempty"`
	TypeOfContact  string `json:"typeOfContact"`
	Action         string `json:"action"`
	Note           string `json:"note,omitempty"`
	WhyNotReawaken string `json:"whyNotReawaken,omitempty"`
	ChurnMonth     string `json:"churnMonth,omitempty"`
	ActiveMonth    string `json:"activeMonth,omitempty"`
	LinkHubspot    string `json:"linkHubspot,omitempty"`
}

// ProgressEntryDto 一間門市的一個 churn episode 或 active 月份。
// ChurnIndex / ActiveIndex 皆為該店內 1 起算的序號，擇一有值。
type ProgressEntryDto struct {
	Month       string          `json:"month"`
	ChurnIndex  int             `json:"churnIndex,omitempty"`
	ActiveIndex int             `json:"activeIndex,omitempty"`
	TypeOfChurn string          `json:"typeOfChurn,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	Actions     []ActionViewDto `json:"actions"`
}

type ProgressResponseDto struct {
	Progress map[string][]ProgressEntryDto `json:"progress"`
}

// 單一門市的 active 月份清單
type ActiveHistoryDto struct {
	StoreID string `json:"storeId" binding:"required"`
}

type ActiveHistoryResponseDto struct {
	StoreID      string   `json:"storeId"`
	ActiveMonths []string `json:"activeMonths"`
}
