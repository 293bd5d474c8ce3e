package handlers

import (
	"encoding/json"
	"fmt"
	"miniblog/internal/models"
	"miniblog/internal/repository"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type PostResponse struct {
	PostId    string    `json:"postId"`
	AuthorId  string    `json:"authorId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FeedPost - пост ленты вместе со счетчиками вовлеченности
type FeedPost struct {
	PostResponse
	LikesCount   int `json:"likesCount"`
	CommentCount int `json:"commentCount"`
}

type FeedResponse struct {
	Posts []FeedPost `json:"posts"`
	Total int        `json:"total"`
}

type PostDetailResponse struct {
	Post         PostResponse     `json:"post"`
	Images       []models.Image   `json:"images"`
	LikesCount   int              `json:"likesCount"`
	IsLike       bool             `json:"isLike"`
	Comments     []models.Comment `json:"comments"`
	CommentCount int              `json:"commentCount"`
}

type ImageResponse struct {
	ImageID   string `json:"imageId"`
	PostID    string `json:"postId"`
	ImageUrl  string `json:"imageUrl"`
	FileName  string `json:"fileName"`
	FileSize  int64  `json:"fileSize"`
	MimeType  string `json:"mimeType"`
	CreatedAt string `json:"createdAt"`
}

func toPostResponse(post *models.Post) PostResponse {
	return PostResponse{
		PostId:    post.PostID,
		AuthorId:  post.AuthorID,
		Title:     post.Title,
		Body:      post.Body,
		Username:  post.Username,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// GetPosts отдает ленту: все посты, новые первыми, со счетчиками лайков и комментариев
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	counts, err := h.EngagementService.FeedCounts(r.Context(), posts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// forming the response
	feed := make([]FeedPost, 0, len(posts))
	for i, post := range posts {
		feed = append(feed, FeedPost{
			PostResponse: toPostResponse(&post),
			LikesCount:   counts[i].LikesCount,
			CommentCount: counts[i].CommentCount,
		})
	}

	writeSuccess(w, FeedResponse{Posts: feed, Total: len(feed)}, http.StatusOK)
}

// GetPost отдает детальную страницу поста: комментарии, счетчик лайков
// и состояние лайка текущего пользователя (false для анонимов)
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	// identity может отсутствовать, детальная страница публичная
	viewerID, _ := r.Context().Value("userID").(string)

	post, err := h.PostService.GetPost(r.Context(), postID, viewerID, false)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	engagement, err := h.EngagementService.PostEngagement(r.Context(), postID, viewerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// forming the response
	response := PostDetailResponse{
		Post:         toPostResponse(post),
		Images:       post.Images,
		LikesCount:   engagement.LikesCount,
		IsLike:       engagement.IsLike,
		Comments:     engagement.Comments,
		CommentCount: engagement.CommentCount,
	}

	writeSuccess(w, response, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := r.Context().Value("userID").(string)
	if !ok || authorID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заголовок обязателен", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreatePostRequest{
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Body,
	}

	// creating a post
	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, toPostResponse(post), http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok || viewerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["postId"]

	var req struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заголовок обязателен", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdatePostRequest{
		PostID:   postID,
		AuthorID: viewerID,
		Title:    req.Title,
		Body:     req.Body,
	}

	// updating the post
	if err := h.PostService.UpdatePost(r.Context(), serviceReq); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Пост успешно обновлен"}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok || viewerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["postId"]

	if err := h.PostService.DeletePost(r.Context(), postID, viewerID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Пост успешно удален"}, http.StatusOK)
}

func (h *Handlers) AddImage(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok || viewerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["postId"]

	// setting the size limit from the config
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	// getting the file
	file, handler, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// formats image
	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	// check formats
	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	// added image
	image, err := h.PostService.AddImage(r.Context(), postID, viewerID, handler.Filename, file, handler.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// forming the response
	response := ImageResponse{
		ImageID:   image.ImageID,
		PostID:    image.PostID,
		ImageUrl:  image.ImageURL,
		FileName:  handler.Filename,
		FileSize:  handler.Size,
		MimeType:  contentType,
		CreatedAt: image.CreatedAt.Format(time.RFC3339),
	}

	writeSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := r.Context().Value("userID").(string)
	if !ok || viewerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	postID := vars["postId"]
	imageID := vars["imageId"]

	// delete image
	if err := h.PostService.DeleteImage(r.Context(), postID, viewerID, imageID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Картинка успешно удалена"}, http.StatusOK)
}
