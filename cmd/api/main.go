package main

import (
	"fmt"
	"log"
	"miniblog/cmd/app"
	"miniblog/internal/config"
	"miniblog/internal/database"
	handlers "miniblog/internal/handler"
	"miniblog/internal/middleware"
	"net/http"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/user/{userId}", handler.GetUser).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{postId}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/{postId}", handler.DeletePost).Methods(http.MethodDelete)

	router.HandleFunc("/api/posts/{postId}/like", handler.ToggleLike).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}/comments", handler.AddComment).Methods(http.MethodPost)

	router.HandleFunc("/api/posts/{postId}/images", handler.AddImage).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{postId}/images/{imageId}", handler.DeleteImage).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
