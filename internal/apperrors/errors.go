package apperrors

import (
	"github.com/palemoky/pixel-paint/internal/protocol"
)

// GameError 游戏错误（房间和会话共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrMissingParams = &GameError{Code: protocol.ErrCodeMissingParams, Message: "Missing Variables"}
	ErrRoomNotFound  = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "room does not exist"}
	ErrUnauthorized  = &GameError{Code: protocol.ErrCodeUnauthorized, Message: "host-only operation"}
)
