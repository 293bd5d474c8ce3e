package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	PasswordHash           string    `json:"passwordHash" db:"password_hash"`
	RefreshToken           string    `json:"refreshToken" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"refreshTokenExpiryTime" db:"refresh_token_expiry_time"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Username  string    `json:"username" db:"username"`
	Images    []Image   `json:"images" db:"-"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	Visitor   string    `json:"visitor" db:"visitor"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Like хранит одну строку на пару (post_id, user_id), флаг переключается на месте
type Like struct {
	LikeID    string    `json:"likeId" db:"like_id"`
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	IsLike    bool      `json:"isLike" db:"is_like"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Image struct {
	ImageID   string    `json:"imageId" db:"image_id"`
	PostID    string    `json:"postId" db:"post_id"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PostCounts - агрегаты вовлеченности для одного поста
type PostCounts struct {
	PostID       string `json:"postId" db:"post_id"`
	LikesCount   int    `json:"likesCount" db:"likes_count"`
	CommentCount int    `json:"commentCount" db:"comment_count"`
}
