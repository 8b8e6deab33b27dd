package core

// ─── MongoDB ───────────────────────────────────────────────────────────────────

type MongoDatabaseName string
type MongoCollection string

const (
	MongoDBWinback MongoDatabaseName = "winback"
)

const (
	MongoCollectionExportSnapshots MongoCollection = "export_snapshots"
)

// ─── Redis 快取鍵 ──────────────────────────────────────────────────────────────

type CacheKey string

const (
	CacheKeyLogin           CacheKey = "login"
	CacheKeyHome            CacheKey = "home"
	CacheKeyProgress        CacheKey = "progress"
	CacheKeyActiveHistory   CacheKey = "active_history"
	CacheKeyDropdownChurn   CacheKey = "dropdown_churn_actions"
	CacheKeyDropdownActive  CacheKey = "dropdown_active_actions"
	CacheKeyDropdownReasons CacheKey = "dropdown_why_reasons"
)

// For 以身分為維度的快取鍵，例如 home_alice@co
func (k CacheKey) For(suffix string) string {
	return string(k) + "_" + suffix
}

func (k CacheKey) String() string {
	return string(k)
}

// ─── Fluentd ───────────────────────────────────────────────────────────────────

type FluentdSubTag string

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
)
