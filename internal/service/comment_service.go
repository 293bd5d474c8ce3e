package service

import (
	"context"
	"miniblog/internal/models"
	"miniblog/internal/repository"
	"strings"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, visitor, comment string) (*models.Comment, error)
	CommentsForPost(ctx context.Context, postID string) ([]models.Comment, int, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment проверяет оба обязательных поля и сообщает обо всех пустых сразу.
// При ошибке валидации комментарий в БД не попадает.
func (s *commentService) AddComment(ctx context.Context, postID, visitor, comment string) (*models.Comment, error) {
	var missing []string
	if strings.TrimSpace(visitor) == "" {
		missing = append(missing, "Имя обязательно")
	}
	if strings.TrimSpace(comment) == "" {
		missing = append(missing, "Комментарий обязателен")
	}
	if len(missing) > 0 {
		return nil, newValidationError(missing...)
	}

	// comment only on an existing post
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	newComment := &models.Comment{
		PostID:  postID,
		Visitor: visitor,
		Comment: comment,
	}

	err := s.commentRepo.Create(ctx, newComment)
	if err != nil {
		return nil, err
	}

	return newComment, nil
}

func (s *commentService) CommentsForPost(ctx context.Context, postID string) ([]models.Comment, int, error) {
	comments, err := s.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, 0, err
	}

	return comments, len(comments), nil
}
