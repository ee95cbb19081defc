package service

import "errors"

// 业务层错误。每个边界操作只返回这里定义的错误之一，
// HTTP 层据此映射状态码，不再向上传播内部异常细节。
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrRegistrationFailed   = errors.New("registration failed: username or email already exists")
	ErrUserNotFound         = errors.New("user not found")

	ErrRoomNotFound  = errors.New("room not found")
	ErrEmptyRoomName = errors.New("room name is required")
	ErrNotCreator    = errors.New("only the creator can perform this action")

	ErrAlreadyParticipant = errors.New("you are already a participant in this chat room")
	ErrNotParticipant     = errors.New("you are not a participant in this chat room")
	ErrCreatorCannotLeave = errors.New("the creator cannot leave the chat room, delete the room instead")

	ErrEmptyContent = errors.New("message content is required")

	ErrInternalServer = errors.New("internal server error")
)
