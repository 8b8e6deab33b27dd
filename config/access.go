package config

type Access struct {
	// true: 授權表查無此 PIC 時一律拒絕
	// false: 查無此 PIC 時退回 Member，直接以 picCode 比對
	StrictAuthorization bool `mapstructure:"STRICT_AUTHORIZATION" json:"strict_authorization" yaml:"strict_authorization"`
}
