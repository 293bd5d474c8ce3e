package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"miniblog/internal/config"
	"miniblog/internal/models"
	"miniblog/internal/repository"
	"miniblog/internal/storage"
	"strings"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID, viewerID string, checkAuthor bool) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) error
	DeletePost(ctx context.Context, postID, viewerID string) error
	AddImage(ctx context.Context, postID, viewerID, fileName string, file io.Reader, size int64) (*models.Image, error)
	DeleteImage(ctx context.Context, postID, viewerID, imageID string) error
}

type postService struct {
	postRepo  repository.PostRepository
	imageRepo repository.ImageRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, imageRepo repository.ImageRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		imageRepo: imageRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

// authorizeOwner - единственная точка проверки владельца ресурса,
// все мутирующие операции над постом проходят через нее
func authorizeOwner(identityID, ownerID string) error {
	if identityID == "" || identityID != ownerID {
		return repository.ErrForbidden
	}
	return nil
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, newValidationError("Заголовок обязателен")
	}

	post := &models.Post{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Body:     req.Body,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID, viewerID string, checkAuthor bool) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if checkAuthor {
		if err := authorizeOwner(viewerID, post.AuthorID); err != nil {
			return nil, err
		}
	}

	images, err := p.imageRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	for _, image := range images {
		post.Images = append(post.Images, *image)
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) error {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}

	if err := authorizeOwner(req.AuthorID, post.AuthorID); err != nil {
		return err
	}

	if strings.TrimSpace(req.Title) == "" {
		return newValidationError("Заголовок обязателен")
	}

	post.Title = req.Title
	post.Body = req.Body

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return err
	}

	return nil
}

func (p *postService) DeletePost(ctx context.Context, postID, viewerID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := authorizeOwner(viewerID, post.AuthorID); err != nil {
		return err
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	return nil
}

func (p *postService) AddImage(ctx context.Context, postID, viewerID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(viewerID, post.AuthorID); err != nil {
		return nil, err
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	image := &models.Image{
		PostID:   postID,
		ImageURL: imageURL,
	}

	err = p.imageRepo.Create(ctx, image)
	if err != nil {
		p.storage.DeleteImage(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения изображения в БД: %w", err)
	}

	return image, nil
}

func (p *postService) DeleteImage(ctx context.Context, postID, viewerID, imageID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := authorizeOwner(viewerID, post.AuthorID); err != nil {
		return err
	}

	image, err := p.imageRepo.GetByImageID(ctx, imageID)
	if err != nil {
		return err
	}

	if image.PostID != postID {
		return repository.ErrImageNotFound
	}

	// object name восстанавливаем из URL: все после имени бакета
	marker := "/" + p.cfg.MinIO.BucketName + "/"
	var objectName string
	if idx := strings.Index(image.ImageURL, marker); idx >= 0 {
		objectName = image.ImageURL[idx+len(marker):]
	}

	if objectName != "" {
		if err := p.storage.DeleteImage(ctx, objectName); err != nil {
			log.Printf("Предупреждение: не удалось удалить из MinIO: %v", err)
		}
	}

	if err := p.imageRepo.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("ошибка удаления из БД: %w", err)
	}

	return nil
}
