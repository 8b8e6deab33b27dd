package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Sheets    Sheets          `mapstructure:"SHEETS" json:"sheets" yaml:"sheets"`
	Warehouse Warehouse       `mapstructure:"WAREHOUSE" json:"warehouse" yaml:"warehouse"`
	Gateway   Gateway         `mapstructure:"GATEWAY" json:"gateway" yaml:"gateway"`
	Access    Access          `mapstructure:"ACCESS" json:"access" yaml:"access"`
	Cache     Cache           `mapstructure:"CACHE" json:"cache" yaml:"cache"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
