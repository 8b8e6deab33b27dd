package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY        = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS      = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS     = 40002 // 400 - 無效的請求標頭
	MISSING_REQUIRED_FIELDS = 40003 // 400 - 缺少必填欄位

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED      = 40100 // 401 - 未授權
	WRONG_CREDENTIAL  = 40101 // 401 - 密碼錯誤
	FORBIDDEN         = 40301 // 403 - 禁止訪問
	ACCOUNT_INACTIVE  = 40302 // 403 - 帳號未啟用
	PERMISSION_DENIED = 40303 // 403 - 無此門市權限

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND         = 40400 // 404 - 資源未找到
	ACCOUNT_NOT_FOUND = 40401 // 404 - 帳號不存在

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)
	GATEWAY_ERROR       = 50003 // 500 - 外部資料來源讀寫失敗
	WRITE_INCOMPLETE    = 50004 // 500 - append 寫入列數不符預期
	GATEWAY_TIMEOUT     = 50005 // 500 - 外部資料來源逾時

	// 50200 ~ 50499: 外部請求錯誤 (502 503 系列)
	GATEWAY_RESET = 50300 // 503 - 外部資料來源連線被重置
)
