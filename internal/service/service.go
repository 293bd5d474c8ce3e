package service

import (
	"miniblog/internal/config"
	"miniblog/internal/repository"
	"miniblog/internal/storage"
)

type Service struct {
	Auth       AuthService
	Post       PostService
	Comment    CommentService
	Engagement EngagementService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:       NewAuthService(rep.User, cfg),
		Post:       NewPostService(rep.Post, rep.Image, storage, cfg),
		Comment:    NewCommentService(rep.Comment, rep.Post),
		Engagement: NewEngagementService(rep.Like, rep.Comment, rep.Post),
	}
}
