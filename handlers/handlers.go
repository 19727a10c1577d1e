package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/todoapp/go-todo/models"
	"github.com/todoapp/go-todo/store"
)

// UserStore là credential store mà các handler auth cần
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// TodoStore là todo store mà các handler todo cần; mọi phương thức
// đều nhận userID và chỉ nhìn thấy todos của user đó
type TodoStore interface {
	Create(ctx context.Context, todo *models.Todo) error
	List(ctx context.Context, userID int64, opts store.ListOptions) ([]models.Todo, int, error)
	Get(ctx context.Context, userID int64, id string) (*models.Todo, error)
	Update(ctx context.Context, userID int64, id string, patch store.TodoPatch) (*models.Todo, error)
	Toggle(ctx context.Context, userID int64, id string) (*models.Todo, error)
	Delete(ctx context.Context, userID int64, id string) (*models.Todo, error)
	Filter(ctx context.Context, userID int64, filter store.Filter) ([]models.Todo, error)
	Search(ctx context.Context, userID int64, term string) ([]models.Todo, error)
	Stats(ctx context.Context, userID int64) (*models.Stats, error)
	UpdateAttachments(ctx context.Context, userID int64, id string, attachments []models.Attachment) (*models.Todo, error)
}

func fail(c *fiber.Ctx, status int, erreur any) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "erreur": erreur})
}

func serverError(c *fiber.Ctx, err error) error {
	return fail(c, fiber.StatusInternalServerError, err.Error())
}

// HandleHealthCheck godoc
// @Summary Liveness check
// @Tags system
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// HandleIndex trả về tài liệu tóm tắt các endpoint của API
func HandleIndex(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Bienvenue sur Todo App API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"auth": fiber.Map{
				"register": "POST /auth/register",
				"login":    "POST /auth/login",
				"profile":  "GET /auth/me",
			},
			"todos": fiber.Map{
				"create":     "POST /todos",
				"getAll":     "GET /todos",
				"getOne":     "GET /todos/:id",
				"update":     "PUT /todos/:id",
				"toggle":     "PATCH /todos/:id/toggle",
				"delete":     "DELETE /todos/:id",
				"filter":     "GET /todos/filter?completed=true&priority=high",
				"search":     "GET /todos/search?q=urgent",
				"stats":      "GET /todos/stats",
				"upload":     "POST /todos/:id/attachments",
				"deleteFile": "DELETE /todos/:id/attachments/:filename",
			},
		},
	})
}
