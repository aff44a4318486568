package impl

import (
	"context"
	"testing"

	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	mockRepo "rewear/internal/mocks/repository"
	mockSvc "rewear/internal/mocks/service"
	"rewear/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommunityService_PostThought_Success(t *testing.T) {
	communityRepo := mockRepo.NewMockCommunityRepository(t)
	sanitizer := mockSvc.NewMockSanitizer(t)
	service := NewCommunityService(CommunityServiceParams{
		CommunityRepo: communityRepo,
		Sanitizer:     sanitizer,
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()

	sanitizer.On("Sanitize", "<b>love</b> this app").Return("love this app")
	communityRepo.On("Create", ctx, mock.AnythingOfType("*entity.CommunityThought")).Return(nil)

	thought, err := service.PostThought(ctx, usecase.PostThoughtInput{
		Author: "  Jo ",
		Text:   "<b>love</b> this app",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jo", thought.Author)
	assert.Equal(t, "love this app", thought.Text)
}

func TestCommunityService_PostThought_EmptyAfterSanitize(t *testing.T) {
	communityRepo := mockRepo.NewMockCommunityRepository(t)
	sanitizer := mockSvc.NewMockSanitizer(t)
	service := NewCommunityService(CommunityServiceParams{
		CommunityRepo: communityRepo,
		Sanitizer:     sanitizer,
		Logger:        newDiscardLogger(),
	})

	sanitizer.On("Sanitize", "<script>alert(1)</script>").Return("")

	_, err := service.PostThought(context.Background(), usecase.PostThoughtInput{
		Author: "Jo",
		Text:   "<script>alert(1)</script>",
	})
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(err))
}

func TestCommunityService_ListThoughts(t *testing.T) {
	communityRepo := mockRepo.NewMockCommunityRepository(t)
	sanitizer := mockSvc.NewMockSanitizer(t)
	service := NewCommunityService(CommunityServiceParams{
		CommunityRepo: communityRepo,
		Sanitizer:     sanitizer,
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	thoughts := []*entity.CommunityThought{{Author: "Jo", Text: "hello"}}

	communityRepo.On("ListRecent", ctx, thoughtsPageSize).Return(thoughts, nil)

	got, err := service.ListThoughts(ctx)
	require.NoError(t, err)
	assert.Equal(t, thoughts, got)
}
