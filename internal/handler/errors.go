package handlers

import (
	"encoding/json"
	"errors"
	"miniblog/internal/repository"
	"miniblog/internal/service"
	"net/http"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse - стандартный ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError маппит ошибки сервисного слоя на HTTP статусы:
// валидация -> 400, не найдено -> 404, чужой ресурс -> 403, остальное -> 500
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError

	switch {
	case errors.As(err, &vErr):
		WriteError(w, vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrPostNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrLikeNotFound),
		errors.Is(err, repository.ErrImageNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, repository.ErrForbidden):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
