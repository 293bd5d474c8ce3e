package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"miniblog/internal/models"
	"miniblog/internal/repository"
)

func TestEngagementService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New().String()
	userID := uuid.New().String()

	existing := &models.Post{PostID: postID, Title: "Hello"}

	t.Run("Лайк ставится на существующий пост", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		svc := NewEngagementService(likeRepo, commentRepo, postRepo)

		postRepo.On("GetByID", ctx, postID).Return(existing, nil)
		likeRepo.On("Toggle", ctx, postID, userID).Return(true, nil)

		isLike, err := svc.ToggleLike(ctx, postID, userID)

		require.NoError(t, err)
		assert.True(t, isLike)
	})

	t.Run("Повторное переключение снимает лайк", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		svc := NewEngagementService(likeRepo, commentRepo, postRepo)

		postRepo.On("GetByID", ctx, postID).Return(existing, nil)
		likeRepo.On("Toggle", ctx, postID, userID).Return(false, nil)

		isLike, err := svc.ToggleLike(ctx, postID, userID)

		require.NoError(t, err)
		assert.False(t, isLike)
	})

	t.Run("Лайк на несуществующий пост", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		svc := NewEngagementService(likeRepo, commentRepo, postRepo)

		postRepo.On("GetByID", ctx, postID).Return(nil, repository.ErrPostNotFound)

		_, err := svc.ToggleLike(ctx, postID, userID)

		assert.ErrorIs(t, err, repository.ErrPostNotFound)
		likeRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEngagementService_FeedCounts(t *testing.T) {
	ctx := context.Background()

	t.Run("Счетчики выровнены по порядку постов", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		svc := NewEngagementService(likeRepo, commentRepo, postRepo)

		posts := []models.Post{
			{PostID: "post1"},
			{PostID: "post2"},
			{PostID: "post3"},
		}
		postIDs := []string{"post1", "post2", "post3"}

		likeRepo.On("CountForPosts", ctx, postIDs).Return(map[string]int{
			"post1": 2,
			"post3": 1,
		}, nil)
		commentRepo.On("CountForPosts", ctx, postIDs).Return(map[string]int{
			"post2": 4,
		}, nil)

		counts, err := svc.FeedCounts(ctx, posts)

		require.NoError(t, err)
		require.Len(t, counts, 3)

		assert.Equal(t, models.PostCounts{PostID: "post1", LikesCount: 2, CommentCount: 0}, counts[0])
		assert.Equal(t, models.PostCounts{PostID: "post2", LikesCount: 0, CommentCount: 4}, counts[1])
		assert.Equal(t, models.PostCounts{PostID: "post3", LikesCount: 1, CommentCount: 0}, counts[2])
	})

	t.Run("Пустая лента", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		svc := NewEngagementService(likeRepo, commentRepo, postRepo)

		likeRepo.On("CountForPosts", ctx, []string{}).Return(map[string]int{}, nil)
		commentRepo.On("CountForPosts", ctx, []string{}).Return(map[string]int{}, nil)

		counts, err := svc.FeedCounts(ctx, []models.Post{})

		require.NoError(t, err)
		assert.Empty(t, counts)
	})
}

func TestEngagementService_PostEngagement(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New().String()
	viewerID := uuid.New().String()

	t.Run("Аноним всегда видит is_like = false", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		svc := NewEngagementService(likeRepo, commentRepo, postRepo)

		likeRepo.On("CountForPost", ctx, postID).Return(3, nil)
		commentRepo.On("GetByPostID", ctx, postID).Return([]models.Comment{}, nil)

		engagement, err := svc.PostEngagement(ctx, postID, "")

		require.NoError(t, err)
		assert.Equal(t, 3, engagement.LikesCount)
		assert.False(t, engagement.IsLike)
		likeRepo.AssertNotCalled(t, "GetByPostAndUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Авторизованный видит свой лайк", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		svc := NewEngagementService(likeRepo, commentRepo, postRepo)

		likeRepo.On("CountForPost", ctx, postID).Return(3, nil)
		likeRepo.On("GetByPostAndUser", ctx, postID, viewerID).Return(&models.Like{
			PostID: postID,
			UserID: viewerID,
			IsLike: true,
		}, nil)
		commentRepo.On("GetByPostID", ctx, postID).Return([]models.Comment{
			{CommentID: "c1", Comment: "первый"},
		}, nil)

		engagement, err := svc.PostEngagement(ctx, postID, viewerID)

		require.NoError(t, err)
		assert.True(t, engagement.IsLike)
		assert.Equal(t, 1, engagement.CommentCount)
	})

	t.Run("Снятый лайк не считается активным", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		svc := NewEngagementService(likeRepo, commentRepo, postRepo)

		likeRepo.On("CountForPost", ctx, postID).Return(0, nil)
		likeRepo.On("GetByPostAndUser", ctx, postID, viewerID).Return(&models.Like{
			PostID: postID,
			UserID: viewerID,
			IsLike: false,
		}, nil)
		commentRepo.On("GetByPostID", ctx, postID).Return([]models.Comment{}, nil)

		engagement, err := svc.PostEngagement(ctx, postID, viewerID)

		require.NoError(t, err)
		assert.False(t, engagement.IsLike)
	})

	t.Run("Пользователь еще не трогал лайк", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		commentRepo := new(MockCommentRepository)
		postRepo := new(MockPostRepository)
		svc := NewEngagementService(likeRepo, commentRepo, postRepo)

		likeRepo.On("CountForPost", ctx, postID).Return(5, nil)
		likeRepo.On("GetByPostAndUser", ctx, postID, viewerID).Return(nil, repository.ErrLikeNotFound)
		commentRepo.On("GetByPostID", ctx, postID).Return([]models.Comment{}, nil)

		engagement, err := svc.PostEngagement(ctx, postID, viewerID)

		require.NoError(t, err)
		assert.False(t, engagement.IsLike)
		assert.Equal(t, 5, engagement.LikesCount)
	})
}

//go test ./internal/service/... -v
