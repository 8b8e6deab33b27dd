package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanGatewayRead        TraceSpanName = "gateway_read"
	SpanGatewayAppend      TraceSpanName = "gateway_append"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricGatewayReadsTotal   MetricName = "gateway_reads_total"
	MetricGatewayAppendsTotal MetricName = "gateway_appends_total"
	MetricCacheHitsTotal      MetricName = "cache_hits_total"
	MetricCacheMissesTotal    MetricName = "cache_misses_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelTable    MetricLabelName = "table"
	MetricLabelKey      MetricLabelName = "key"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"http.method"`
	Path       string            `trace:"http.path"`
	FullPath   string            `trace:"http.route"`
	Query      string            `trace:"http.query"`
	Body       string            `trace:"http.request.body_preview"`
	Scheme     string            `trace:"url.scheme"`
	Host       string            `trace:"server.address"`
	UserAgent  string            `trace:"user_agent.original"`
	ContentLen int64             `trace:"http.request.content_length"`
	Proto      string            `trace:"network.protocol.version"`
	ClientIP   string            `trace:"client.address"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

// 供 gateway 讀寫使用
type TraceGatewayMeta struct {
	Driver   string `trace:"gateway.driver"`
	Table    string `trace:"gateway.table"`
	Range    string `trace:"gateway.range"`
	RowCount int    `trace:"gateway.row_count"`
	Appended int    `trace:"gateway.rows_appended"`
}

// 供 scope 解析使用
type TraceScopeMeta struct {
	PICCode    string `trace:"scope.pic_code"`
	Role       string `trace:"scope.role"`
	Region     string `trace:"scope.region"`
	Subteam    string `trace:"scope.subteam"`
	StoreCount int    `trace:"scope.store_count"`
	Strict     bool   `trace:"scope.strict_authorization"`
}

// 供 view cache 使用
type TraceCacheMeta struct {
	Key string `trace:"cache.key"`
	Op  string `trace:"cache.op"` // "get" / "set" / "delete"
	Hit bool   `trace:"cache.hit"`
}

// 供行動紀錄寫入使用
type TraceRecordActionMeta struct {
	StoreID  string `trace:"action.store_id"`
	Kind     string `trace:"action.kind"`
	PICCode  string `trace:"action.pic_code"`
	Appended int    `trace:"action.rows_appended"`
}
