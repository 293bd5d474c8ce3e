package handlers

import (
	"encoding/json"
	"miniblog/internal/models"
	"net/http"

	"github.com/gorilla/mux"
)

type CommentResponse struct {
	CommentId string `json:"commentId"`
	PostId    string `json:"postId"`
	Visitor   string `json:"visitor"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

// AddComment принимает комментарий посетителя, авторизация не требуется.
// Имя и текст обязательны, обе ошибки валидации возвращаются одним ответом.
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	var req struct {
		Visitor string `json:"visitor"`
		Comment string `json:"comment"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), postID, req.Visitor, req.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// forming the response
	writeSuccess(w, toCommentResponse(comment), http.StatusCreated)
}

func toCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		CommentId: comment.CommentID,
		PostId:    comment.PostID,
		Visitor:   comment.Visitor,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
