package repository

import (
	"context"
	"fmt"
	"miniblog/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (comment_id, post_id, visitor, comment, created_at)
		VALUES (:comment_id, :post_id, :visitor, :comment, :created_at)
	`

	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

// GetByPostID возвращает комментарии поста в порядке добавления
func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT comment_id, post_id, visitor, comment, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

// CountForPosts возвращает счетчики комментариев для набора постов одним запросом
func (r *CommentRepositoryImpl) CountForPosts(ctx context.Context, postIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT post_id, COUNT(*) AS comment_count
		FROM comments
		WHERE post_id = ANY($1)
		GROUP BY post_id
	`

	var rows []struct {
		PostID       string `db:"post_id"`
		CommentCount int    `db:"comment_count"`
	}

	err := r.db.SelectContext(ctx, &rows, query, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчете комментариев: %w", err)
	}

	for _, row := range rows {
		counts[row.PostID] = row.CommentCount
	}

	return counts, nil
}
