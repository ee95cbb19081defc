package redisstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelForRoom(t *testing.T) {
	// 发布端和订阅端共用的命名约定，改动会让广播静默失效
	assert.Equal(t, "sfm:chat_room_7", ChannelForRoom("sfm:", 7))
	assert.Equal(t, "chat_room_42", ChannelForRoom("", 42))
}
