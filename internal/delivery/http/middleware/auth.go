package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"cloud-showcase/internal/domain/dto"
)

// SessionCookie, identity provider'ın bıraktığı session cookie'si.
const SessionCookie = "__session"

// UserIDKey, doğrulanmış kullanıcının locals anahtarı.
const UserIDKey = "userID"

// RequireSession, session token'ını (cookie veya Bearer) HS256 ile
// doğrular ve subject'i locals'a koyar. Token yoksa ya da geçersizse
// istek handler'a hiç ulaşmadan 401 döner.
func RequireSession(secretKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(SessionCookie)
		if raw == "" {
			if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
				raw = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if raw == "" {
			return unauthorized(c)
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return unauthorized(c)
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			return unauthorized(c)
		}

		c.Locals(UserIDKey, subject)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: "Unauthorized",
	})
}
