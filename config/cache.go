package config

type Cache struct {
	// 快取存活秒數，預設一小時
	TTLSeconds int64 `mapstructure:"TTL_SECONDS" json:"ttl_seconds" yaml:"ttl_seconds"`
	// 下拉選單暖快取的 cron spec（含秒），留空則停用
	WarmSpec string `mapstructure:"WARM_SPEC" json:"warm_spec" yaml:"warm_spec"`
}
