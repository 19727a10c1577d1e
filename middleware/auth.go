package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/todoapp/go-todo/models"
	"github.com/todoapp/go-todo/store"
	"github.com/todoapp/go-todo/token"
)

// UserFinder tra cứu user theo id, không kèm hash mật khẩu
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

const userKey = "user"

// Protect xác thực bearer token trên mỗi request, tra user tương ứng
// trong credential store rồi gắn vào context cho các handler phía sau.
// Token hợp lệ nhưng user đã bị xóa vẫn bị chặn 401.
func Protect(users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthorized(c, "Non authentifié - Token manquant")
		}

		userID, err := token.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				return unauthorized(c, "Token expiré")
			}
			return unauthorized(c, "Token invalide")
		}

		user, err := users.FindByID(c.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			return unauthorized(c, "Utilisateur non trouvé")
		} else if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"erreur":  err.Error(),
			})
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// CurrentUser trả về user đã được Protect gắn vào request
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"erreur":  message,
	})
}
