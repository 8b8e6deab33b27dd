package config

const (
	GatewayDriverSheets    = "sheets"
	GatewayDriverWarehouse = "warehouse"
)

type Gateway struct {
	// 資料來源: sheets | warehouse
	Driver string `mapstructure:"DRIVER" json:"driver" yaml:"driver"`
	// 單次 gateway 呼叫的逾時秒數
	TimeoutSeconds int64 `mapstructure:"TIMEOUT_SECONDS" json:"timeout_seconds" yaml:"timeout_seconds"`
}
