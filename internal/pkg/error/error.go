package error

import "net/http"

type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}

}
func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return InternalServer(err.Error())
}

// ✅ 用戶端錯誤 (400 系列)
func ValidateErr(errorDesc string) *Error {
	errCode := BAD_REQUEST_BODY
	return New(http.StatusBadRequest, errCode, "bad-request/body", errorDesc)
}
func ValidatePathParamsErr(errorDesc string) *Error {
	errCode := BAD_REQUEST_PARAMS
	return New(http.StatusBadRequest, errCode, "bad-request/params", errorDesc)
}

func BadRequest(errorDesc string, errorCode ...int) *Error {
	errCode := BAD_REQUEST_BODY
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusBadRequest, errCode, "bad-request", errorDesc)
}

func MissingRequiredFields(errorDesc string) *Error {
	return New(http.StatusBadRequest, MISSING_REQUIRED_FIELDS, "missing-required-fields", errorDesc)
}

// ✅ 驗證與權限錯誤 (401, 403, 404)
func Unauthorized(errorDesc string, errorCode ...int) *Error {
	errCode := UNAUTHORIZED
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusUnauthorized, errCode, "unauthorized", errorDesc)
}

// 密碼錯誤
func WrongCredential(errorDesc string) *Error {
	return New(http.StatusUnauthorized, WRONG_CREDENTIAL, "wrong-credential", errorDesc)
}

// 帳號存在但未啟用
func AccountInactive(errorDesc string) *Error {
	return New(http.StatusForbidden, ACCOUNT_INACTIVE, "account-inactive", errorDesc)
}

// 已登入但對目標門市無權限
func PermissionDenied(errorDesc string) *Error {
	return New(http.StatusForbidden, PERMISSION_DENIED, "permission-denied", errorDesc)
}

func Forbidden(errorDesc string, errorCode ...int) *Error {
	errCode := FORBIDDEN
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusForbidden, errCode, "forbidden", errorDesc)
}

// ✅ 資源找不到 (404)
func NotFound(errorDesc string, errorCode ...int) *Error {
	errCode := NOT_FOUND
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusNotFound, errCode, "not-found", errorDesc)
}

// 帳號不在 source-of-truth 表內
func AccountNotFound(errorDesc string) *Error {
	return New(http.StatusNotFound, ACCOUNT_NOT_FOUND, "account-not-found", errorDesc)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, "internal-server-error", errorDesc)
}

func DatabaseError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, DATABASE_ERROR, "database-error", errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

// ✅ 外部資料來源錯誤
// gateway 讀寫失敗與逾時都是 500，連線被重置時用 GatewayReset（503）
func GatewayError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, GATEWAY_ERROR, "gateway-error", errorDesc)
}

func GatewayReset(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, GATEWAY_RESET, "gateway-connection-reset", errorDesc)
}

func GatewayTimeout(errorDesc string) *Error {
	return New(http.StatusInternalServerError, GATEWAY_TIMEOUT, "gateway-timeout", errorDesc)
}

// append 回報的寫入列數不等於預期
func WriteIncomplete(errorDesc string) *Error {
	return New(http.StatusInternalServerError, WRITE_INCOMPLETE, "write-incomplete", errorDesc)
}

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}
func (e *Error) ErrorDesc() string {
	return e.errorDesc
}
func (e *Error) Error() string {
	return e.errorMsg
}
func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequest(desc)
	case http.StatusUnauthorized:
		return Unauthorized(desc)
	case http.StatusForbidden:
		return Forbidden(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusInternalServerError:
		return InternalServer(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	default:
		return InternalServer(desc)
	}
}
