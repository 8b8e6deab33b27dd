package dto

// 寫入一筆行動紀錄；kind 由 ?type= 指定
type SubmitActionDto struct {
	Email          string `json:"email" binding:"required,email"`
	StoreID        string `json:"storeId" binding:"required"`
	StoreName      string `json:"storeName,omitempty"`
	ContactDate    string `json:"contactDate" binding:"required"`
	TypeOfContact  string `json:"typeOfContact" binding:"required"`
	Action         string `json:"action" binding:"required"`
	Note           string `json:"note,omitempty"`
	WhyNotReawaken string `json:"whyNotReawaken,omitempty"`
	ChurnMonth     string `json:"churnMonth,omitempty"`
	ActiveMonth    string `json:"activeMonth,omitempty"`
	LinkHubspot    string `json:"linkHubspot,omitempty"`
}

type SubmitActionResponseDto struct {
	RowsAppended int `json:"rowsAppended"`
}
