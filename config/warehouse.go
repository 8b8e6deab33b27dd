package config

type Warehouse struct {
	// MySQL DSN, e.g. user:pass@tcp(host:3306)/winback?parseTime=false
	DSN string `mapstructure:"DSN" json:"dsn" yaml:"dsn"`
	// 連線池上限
	MaxOpenConns int `mapstructure:"MAX_OPEN_CONNS" json:"max_open_conns" yaml:"max_open_conns"`
}
