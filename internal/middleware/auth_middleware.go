package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// AdminAuthMiddleware защищает админские маршруты (импорт/экспорт датасетов,
// запуск обучения). Токены выпускаются ops-инструментами с общим секретом,
// сервис их только проверяет.
type AdminAuthMiddleware struct {
	secret []byte
}

// NewAdminAuthMiddleware создает новый middleware с заданным секретом
func NewAdminAuthMiddleware(secret string) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{secret: []byte(secret)}
}

// RequireAdmin проверяет Bearer-токен в заголовке Authorization
func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header format must be Bearer {token}"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Next()
	}
}
