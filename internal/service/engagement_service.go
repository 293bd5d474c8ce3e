package service

import (
	"context"
	"errors"
	"miniblog/internal/models"
	"miniblog/internal/repository"
)

type EngagementService interface {
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
	FeedCounts(ctx context.Context, posts []models.Post) ([]models.PostCounts, error)
	PostEngagement(ctx context.Context, postID, viewerID string) (*PostEngagement, error)
}

// PostEngagement - данные вовлеченности для детальной страницы поста
type PostEngagement struct {
	LikesCount   int              `json:"likesCount"`
	IsLike       bool             `json:"isLike"`
	Comments     []models.Comment `json:"comments"`
	CommentCount int              `json:"commentCount"`
}

type engagementService struct {
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewEngagementService(likeRepo repository.LikeRepository, commentRepo repository.CommentRepository, postRepo repository.PostRepository) EngagementService {
	return &engagementService{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// ToggleLike переключает лайк пользователя: нет строки -> liked,
// liked -> unliked, unliked -> liked. Возвращает новое состояние.
func (s *engagementService) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return false, err
	}

	return s.likeRepo.Toggle(ctx, postID, userID)
}

// FeedCounts собирает счетчики лайков и комментариев для ленты,
// по одному групповому запросу на метрику вместо запроса на каждый пост
func (s *engagementService) FeedCounts(ctx context.Context, posts []models.Post) ([]models.PostCounts, error) {
	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.PostID)
	}

	likes, err := s.likeRepo.CountForPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.CountForPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	counts := make([]models.PostCounts, 0, len(posts))
	for _, post := range posts {
		counts = append(counts, models.PostCounts{
			PostID:       post.PostID,
			LikesCount:   likes[post.PostID],
			CommentCount: comments[post.PostID],
		})
	}

	return counts, nil
}

func (s *engagementService) PostEngagement(ctx context.Context, postID, viewerID string) (*PostEngagement, error) {
	likesCount, err := s.likeRepo.CountForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	// анонимный посетитель всегда видит is_like = false
	isLike := false
	if viewerID != "" {
		like, err := s.likeRepo.GetByPostAndUser(ctx, postID, viewerID)
		if err != nil && !errors.Is(err, repository.ErrLikeNotFound) {
			return nil, err
		}
		if like != nil {
			isLike = like.IsLike
		}
	}

	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &PostEngagement{
		LikesCount:   likesCount,
		IsLike:       isLike,
		Comments:     comments,
		CommentCount: len(comments),
	}, nil
}
