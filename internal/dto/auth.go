package dto

// 登入（email 即身分）
type LoginDto struct {
	Email string `json:"email" binding:"required,email"`
}

// 手動登入（email + 密碼）
type ManualLoginDto struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponseDto struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Team     string `json:"team"`
	Status   string `json:"status"`
	PICCode  string `json:"picCode"`
	Role     string `json:"role"`
	Region   string `json:"region"`
	Subteam  string `json:"subteam"`
	Token    string `json:"token,omitempty"` // 只在 manual-login 簽發
}
