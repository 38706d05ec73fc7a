package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/beanflow-api/internal/config"
	"github.com/BruksfildServices01/beanflow-api/internal/httperr"
)

const ContextSubject = "subject"

// AuthMiddleware verifies HS256 bearer tokens issued by the login service.
// With no secret configured every request passes through.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	if !cfg.AuthEnabled() {
		return func(c *gin.Context) { c.Next() }
	}

	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "Token de acesso ausente")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "Cabeçalho Authorization inválido")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "Token de acesso inválido")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			httperr.Unauthorized(c, "Token de acesso inválido")
			return
		}

		c.Set(ContextSubject, sub)
		c.Next()
	}
}
