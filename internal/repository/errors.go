package repository

import "errors"

var (
	ErrPostNotFound  = errors.New("пост не найден")
	ErrUserNotFound  = errors.New("пользователь не найден")
	ErrLikeNotFound  = errors.New("лайк не найден")
	ErrImageNotFound = errors.New("изображение не найдено")
	ErrForbidden     = errors.New("доступ запрещен")
)
