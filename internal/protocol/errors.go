package protocol

// 错误码
const (
	ErrCodeUnknown           = 1000
	ErrCodeInvalidMsg        = 1001
	ErrCodeRateLimit         = 1002 // 速率限制
	ErrCodeMissingParams     = 3001 // 缺少必要参数
	ErrCodeRoomNotFound      = 3002 // 房间不存在
	ErrCodeUnauthorized      = 3003 // 非房主执行房主操作
	ErrCodeServerMaintenance = 5003 // 服务器维护中
)

// GenericErrorText 对外统一的错误提示，具体原因放在 detail 里
const GenericErrorText = "There was an issue, please try again"

// ErrorMessages 错误码对应的诊断信息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "unknown error",
	ErrCodeInvalidMsg:        "invalid message format",
	ErrCodeRateLimit:         "too many requests",
	ErrCodeMissingParams:     "Missing Variables",
	ErrCodeRoomNotFound:      "room does not exist",
	ErrCodeUnauthorized:      "host-only operation",
	ErrCodeServerMaintenance: "server under maintenance",
}
