package handlers

import (
	"github.com/go-playground/validator/v10"
	"miniblog/internal/config"
	"miniblog/internal/repository"
	"miniblog/internal/service"
)

type Handlers struct {
	AuthService       service.AuthService
	PostService       service.PostService
	CommentService    service.CommentService
	EngagementService service.EngagementService
	PostRepo          repository.PostRepository
	UserRepo          repository.UserRepository
	TablesRepo        repository.TablesRepository
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:       service.Auth,
		PostService:       service.Post,
		CommentService:    service.Comment,
		EngagementService: service.Engagement,
		PostRepo:          repo.Post,
		UserRepo:          repo.User,
		TablesRepo:        repo.Tables,
		Cfg:               config,
		Validate:          validator.New(),
	}
}
