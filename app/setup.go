package app

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/todoapp/go-todo/config"
	"github.com/todoapp/go-todo/database"
	"github.com/todoapp/go-todo/handlers"
	"github.com/todoapp/go-todo/router"
	"github.com/todoapp/go-todo/store"
	"github.com/todoapp/go-todo/upload"
)

// SetupAndRunApp khởi động ứng dụng Fiber
func SetupAndRunApp() error {
	// Load biến môi trường từ file .env
	err := config.LoadENV()
	if err != nil {
		return err
	}

	// Khởi động PostgreSQL
	err = database.StartPostgreSQL(os.Getenv("POSTGRESQL_URI"))
	if err != nil {
		return err
	}

	// Đảm bảo kết nối với cơ sở dữ liệu được đóng sau khi ứng dụng kết thúc
	defer database.ClosePostgreSQL()

	app := NewFiber()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// Đính kèm middleware để xử lý lỗi và ghi log
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	// Khởi tạo store và handler
	users := store.NewUsers(database.GetDB())
	todos := store.NewTodos(database.GetDB())

	authHandler := handlers.NewAuthHandler(users)
	todoHandler := handlers.NewTodoHandler(todos)
	attachmentHandler := handlers.NewAttachmentHandler(todos, config.UploadDir())

	// Thiết lập route cho ứng dụng
	router.SetupRoutes(app, authHandler, todoHandler, attachmentHandler, users, config.UploadDir())

	// Đính kèm Swagger
	config.AddSwaggerRoutes(app)

	// Lắng nghe trên cổng chỉ định
	return app.Listen(":" + config.Port())
}

// NewFiber tạo app Fiber với cấu hình dùng chung cho server lẫn test:
// BodyLimit chặn upload quá 5 MiB ngay ở tầng transport (handler không
// bao giờ chạy), errorHandler là fallback toàn cục cho lỗi chưa được map
func NewFiber() *fiber.App {
	return fiber.New(fiber.Config{
		BodyLimit:    upload.MaxFileSize,
		ErrorHandler: errorHandler,
	})
}

// errorHandler là fallback toàn cục: mọi lỗi chưa được handler nào map
// đều trả về một response JSON, không lộ chi tiết nội bộ
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		// Body vượt BodyLimit: trả về lỗi 400 theo đúng hợp đồng API
		if fiberErr.Code == fiber.StatusRequestEntityTooLarge {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"erreur":  "Fichier trop volumineux (5 Mo maximum)",
			})
		}
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"erreur":  fiberErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"erreur":  "Erreur serveur",
	})
}
