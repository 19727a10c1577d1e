package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/todoapp/go-todo/handlers"
	"github.com/todoapp/go-todo/middleware"
	"github.com/todoapp/go-todo/validation"
)

// SetupRoutes đăng ký toàn bộ route của ứng dụng.
// Các route chữ (filter, search, stats) phải đứng trước /:id,
// nếu không "filter" sẽ bị hiểu nhầm là một id.
func SetupRoutes(app *fiber.App, auth *handlers.AuthHandler, todos *handlers.TodoHandler,
	attachments *handlers.AttachmentHandler, users middleware.UserFinder, uploadDir string) {

	app.Get("/", handlers.HandleIndex)
	app.Get("/health", handlers.HandleHealthCheck)

	// Phục vụ file đính kèm chỉ đọc
	app.Static("/uploads", uploadDir)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", validation.Body(validation.RegisterRules()...), auth.Register)
	authGroup.Post("/login", validation.Body(validation.LoginRules()...), auth.Login)
	authGroup.Get("/me", middleware.Protect(users), auth.Me)

	api := app.Group("/todos", middleware.Protect(users))

	api.Post("/", validation.Body(validation.CreateTodoRules()...), todos.Create)
	api.Get("/", todos.List)
	api.Get("/filter", todos.Filter)
	api.Get("/search", todos.Search)
	api.Get("/stats", todos.Stats)
	api.Get("/:id", todos.GetByID)
	api.Put("/:id", validation.Body(validation.UpdateTodoRules()...), todos.Update)
	api.Patch("/:id/toggle", todos.Toggle)
	api.Delete("/:id", todos.Delete)

	api.Post("/:id/attachments", attachments.Upload)
	api.Delete("/:id/attachments/:filename", attachments.Delete)
}
