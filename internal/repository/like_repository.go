package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"miniblog/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type LikeRepositoryImpl struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) *LikeRepositoryImpl {
	return &LikeRepositoryImpl{db: db}
}

// Toggle переключает лайк одним атомарным upsert.
// Нет строки -> вставляем is_like = TRUE, есть строка -> инвертируем флаг на месте.
// Уникальность пары (post_id, user_id) гарантирует constraint в БД.
func (r *LikeRepositoryImpl) Toggle(ctx context.Context, postID, userID string) (bool, error) {
	query := `
		INSERT INTO likes (like_id, post_id, user_id, is_like, created_at)
		VALUES ($1, $2, $3, TRUE, $4)
		ON CONFLICT (post_id, user_id)
		DO UPDATE SET is_like = NOT likes.is_like
		RETURNING is_like
	`

	var isLike bool
	err := r.db.GetContext(ctx, &isLike, query, uuid.New().String(), postID, userID, time.Now())
	if err != nil {
		return false, fmt.Errorf("ошибка при переключении лайка: %w", err)
	}

	return isLike, nil
}

func (r *LikeRepositoryImpl) GetByPostAndUser(ctx context.Context, postID, userID string) (*models.Like, error) {
	query := `
		SELECT like_id, post_id, user_id, is_like, created_at
		FROM likes
		WHERE post_id = $1 AND user_id = $2
	`

	var like models.Like
	err := r.db.GetContext(ctx, &like, query, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("лайк пользователя %s на пост %s: %w", userID, postID, ErrLikeNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении лайка: %w", err)
	}

	return &like, nil
}

// CountForPost считает только строки с is_like = TRUE,
// снятые лайки занимают слот пары, но в счетчик не попадают
func (r *LikeRepositoryImpl) CountForPost(ctx context.Context, postID string) (int, error) {
	query := `SELECT COUNT(*) FROM likes WHERE post_id = $1 AND is_like = TRUE`

	var count int
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете лайков: %w", err)
	}

	return count, nil
}

// CountForPosts возвращает счетчики лайков для набора постов одним запросом
func (r *LikeRepositoryImpl) CountForPosts(ctx context.Context, postIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT post_id, COUNT(*) AS likes_count
		FROM likes
		WHERE post_id = ANY($1) AND is_like = TRUE
		GROUP BY post_id
	`

	var rows []struct {
		PostID     string `db:"post_id"`
		LikesCount int    `db:"likes_count"`
	}

	err := r.db.SelectContext(ctx, &rows, query, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчете лайков постов: %w", err)
	}

	for _, row := range rows {
		counts[row.PostID] = row.LikesCount
	}

	return counts, nil
}
