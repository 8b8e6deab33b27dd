package config

type Sheets struct {
	// 目標試算表 ID
	SpreadsheetID string `mapstructure:"SPREADSHEET_ID" json:"spreadsheet_id" yaml:"spreadsheet_id"`
	// service account 憑證檔路徑
	CredentialsFile string `mapstructure:"CREDENTIALS_FILE" json:"credentials_file" yaml:"credentials_file"`
}
