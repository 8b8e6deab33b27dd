package dto

// Home 視圖請求；?force=true 略過快取
type HomeDto struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthInfoDto Authentication profile 併上 Decentralization 授權欄位
type AuthInfoDto struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Team      string `json:"team"`
	PICCode   string `json:"picCode"`
	Role      string `json:"role"`
	Region    string `json:"region"`
	Subteam   string `json:"subteam"`
	ConcatKey string `json:"concatKey"`
}

type StoreViewDto struct {
	StoreID              string `json:"storeId"`
	StoreName            string `json:"storeName"`
	BuyerID              string `json:"buyerId,omitempty"`
	CurrentPIC           string `json:"currentPic"`
	FullAddress          string `json:"fullAddress,omitempty"`
	LastOrderDate        string `json:"lastOrderDate,omitempty"`
	ChurnStatusThisMonth string `json:"churnStatusThisMonth,omitempty"`
}

type HomeResponseDto struct {
	AuthInfo AuthInfoDto    `json:"authInfo"`
	Stores   []StoreViewDto `json:"stores"`
}
