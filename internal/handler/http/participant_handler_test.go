package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ekkymulia/seoul-festivmeet/internal/domain"
	"github.com/ekkymulia/seoul-festivmeet/internal/repository"
)

func TestParticipantHandler_Join_Success(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t, 42)
	f.roomRepo.On("FindByID", mock.Anything, uint(3)).
		Return(&domain.Room{ID: 3, CreatorID: 7}, nil).Once()
	f.participantRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Participant) bool {
		return p.RoomID == uint(3) && p.UserID == uint(42)
	})).Return(nil).Once()

	// Act
	rec := f.do(http.MethodPost, "/api/chat-rooms/3/participants", "")

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)
	f.participantRepo.AssertExpectations(t)
}

func TestParticipantHandler_Join_AlreadyParticipant(t *testing.T) {
	// Arrange: 重复加入命中唯一索引
	f := newHandlerFixture(t, 42)
	f.roomRepo.On("FindByID", mock.Anything, uint(3)).
		Return(&domain.Room{ID: 3}, nil).Once()
	f.participantRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Participant")).
		Return(repository.ErrDuplicateEntry).Once()

	// Act
	rec := f.do(http.MethodPost, "/api/chat-rooms/3/participants", "")

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already a participant")
}

func TestParticipantHandler_Join_RoomNotFound(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t, 42)
	f.roomRepo.On("FindByID", mock.Anything, uint(404)).
		Return(nil, repository.ErrRoomNotFound).Once()

	// Act
	rec := f.do(http.MethodPost, "/api/chat-rooms/404/participants", "")

	// Assert
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParticipantHandler_Leave_Success(t *testing.T) {
	// Arrange
	f := newHandlerFixture(t, 42)
	f.participantRepo.On("Exists", mock.Anything, uint(3), uint(42)).Return(true, nil).Once()
	f.roomRepo.On("FindByID", mock.Anything, uint(3)).
		Return(&domain.Room{ID: 3, CreatorID: 7}, nil).Once()
	f.participantRepo.On("Delete", mock.Anything, uint(3), uint(42)).Return(nil).Once()

	// Act
	rec := f.do(http.MethodDelete, "/api/chat-rooms/3/participants", "")

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	f.participantRepo.AssertExpectations(t)
}

func TestParticipantHandler_Leave_NotParticipantIs400(t *testing.T) {
	// Arrange: 退出接口把未参与按 400 返回，403 留给消息接口
	f := newHandlerFixture(t, 42)
	f.participantRepo.On("Exists", mock.Anything, uint(3), uint(42)).Return(false, nil).Once()

	// Act
	rec := f.do(http.MethodDelete, "/api/chat-rooms/3/participants", "")

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not a participant")
}

func TestParticipantHandler_Leave_CreatorIs400(t *testing.T) {
	// Arrange: 创建者退出被拒，响应附带删除房间的引导语
	f := newHandlerFixture(t, 7)
	f.participantRepo.On("Exists", mock.Anything, uint(3), uint(7)).Return(true, nil).Once()
	f.roomRepo.On("FindByID", mock.Anything, uint(3)).
		Return(&domain.Room{ID: 3, CreatorID: 7}, nil).Once()

	// Act
	rec := f.do(http.MethodDelete, "/api/chat-rooms/3/participants", "")

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "delete the room instead")
	f.participantRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
