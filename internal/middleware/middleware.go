package middleware

import (
	"context"
	"github.com/golang-jwt/jwt/v5"
	"log"
	handlers "miniblog/internal/handler"
	"miniblog/internal/service"
	"net/http"
	"strings"
	"time"
)

type Middleware func(http.Handler) http.Handler

// isPublicRequest решает, доступен ли запрос без токена:
// лента, детальная страница и комментарии открыты всем,
// мутации постов и лайки только аутентифицированным
func isPublicRequest(r *http.Request) bool {
	if r.URL.Path == "/" || r.URL.Path == "/health" {
		return true
	}

	if strings.HasPrefix(r.URL.Path, "/api/auth/") {
		return true
	}

	if strings.HasPrefix(r.URL.Path, "/api/posts") {
		if r.Method == http.MethodGet {
			return true
		}
		if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/comments") {
			return true
		}
	}

	return false
}

// AuthMiddleware verifies the JWT token and adds user data to the context.
// Разбор и проверка подписи токена живут в auth сервисе, middleware только
// достает identity. На публичных маршрутах токен не обязателен, но если он
// передан и валиден, identity все равно попадает в контекст
// (детальная страница показывает is_like)
func AuthMiddleware(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			public := isPublicRequest(r)

			// Extracting the token from the header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				handlers.WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			// Checking the "Bearer <token>" format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				handlers.WriteError(w, "Неверный формат токена", http.StatusUnauthorized)
				return
			}

			// Parse token
			token, err := auth.ValidateToken(parts[1])
			if err != nil {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				handlers.WriteError(w, "Недействительный токен", http.StatusUnauthorized)
				return
			}

			// Extracting claims
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				handlers.WriteError(w, "Неверные claims токена", http.StatusUnauthorized)
				return
			}

			userID, ok1 := claims["userId"].(string)
			username, ok2 := claims["username"].(string)
			if !ok1 || !ok2 {
				handlers.WriteError(w, "Неверные данные в токене", http.StatusUnauthorized)
				return
			}

			// Adding user data to the context
			ctx := r.Context()
			ctx = context.WithValue(ctx, "userID", userID)
			ctx = context.WithValue(ctx, "username", username)

			// Passing the updated context on
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("Method: %s, URL: %s, Duration: %s", r.Method, r.RequestURI, time.Since(start))
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
