package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/todoapp/go-todo/middleware"
	"github.com/todoapp/go-todo/models"
	"github.com/todoapp/go-todo/store"
	"github.com/todoapp/go-todo/validation"
)

// TodoHandler xử lý CRUD, lọc, tìm kiếm và thống kê todos
type TodoHandler struct {
	todos TodoStore
}

func NewTodoHandler(todos TodoStore) *TodoHandler {
	return &TodoHandler{todos: todos}
}

type todoInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	Deadline    *string `json:"deadline"`
}

// Create godoc
// @Summary Tạo todo mới
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /todos [post]
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	var input todoInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}

	user := middleware.CurrentUser(c)
	todo := &models.Todo{
		UserID:   user.ID,
		Priority: models.DefaultPriority,
		Category: models.DefaultCategory,
	}

	if input.Title != nil {
		todo.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		todo.Description = strings.TrimSpace(*input.Description)
	}
	if input.Priority != nil {
		todo.Priority = *input.Priority
	}
	if input.Category != nil {
		todo.Category = *input.Category
	}
	if input.Deadline != nil {
		// định dạng đã được validation middleware kiểm tra
		if deadline, ok := validation.ParseDate(*input.Deadline); ok {
			todo.Deadline = &deadline
		}
	}

	if err := h.todos.Create(c.Context(), todo); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Todo créée avec succès",
		"data":    todo,
	})
}

// List godoc
// @Summary Danh sách todos có phân trang và sắp xếp
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param page query int false "trang, mặc định 1"
// @Param limit query int false "số dòng mỗi trang, mặc định 10"
// @Param sort query string false "field sắp xếp, tiền tố - là giảm dần"
// @Router /todos [get]
func (h *TodoHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	sort := c.Query("sort")

	todos, total, err := h.todos.List(c.Context(), user.ID, store.ListOptions{
		Page:  page,
		Limit: limit,
		Sort:  sort,
	})
	if err != nil {
		return serverError(c, err)
	}

	sorting := sort
	if sorting == "" {
		sorting = "createdAt (desc)"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"pagination": paginate(page, limit, total),
		"sorting":    sorting,
		"count":      len(todos),
		"data":       todos,
	})
}

// paginate dựng khối phân trang từ tổng số dòng khớp.
// Trang vượt quá totalPages không phải lỗi: data rỗng, hasNextPage=false.
func paginate(page, limit, total int) models.Pagination {
	totalPages := (total + limit - 1) / limit

	p := models.Pagination{
		CurrentPage: page,
		Limit:       limit,
		TotalTodos:  total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}

	return p
}

// GetByID godoc
// @Summary Một todo theo id
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Router /todos/{id} [get]
func (h *TodoHandler) GetByID(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	todo, err := h.todos.Get(c.Context(), user.ID, c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Todo non trouvée")
	} else if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    todo,
	})
}

// Update godoc
// @Summary Sửa todo, chỉ các field được gửi lên
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c *fiber.Ctx) error {
	var input todoInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
		}
	}

	patch := store.TodoPatch{
		Completed: input.Completed,
		Priority:  input.Priority,
		Category:  input.Category,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		patch.Title = &title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		patch.Description = &description
	}
	if input.Deadline != nil {
		if deadline, ok := validation.ParseDate(*input.Deadline); ok {
			patch.Deadline = &deadline
		}
	}

	user := middleware.CurrentUser(c)
	todo, err := h.todos.Update(c.Context(), user.ID, c.Params("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Todo non trouvée")
	} else if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Todo mise à jour avec succès",
		"data":    todo,
	})
}

// Toggle godoc
// @Summary Đảo trạng thái completed
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Router /todos/{id}/toggle [patch]
func (h *TodoHandler) Toggle(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	todo, err := h.todos.Toggle(c.Context(), user.ID, c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Todo non trouvée")
	} else if err != nil {
		return serverError(c, err)
	}

	message := "Todo marquée comme non complétée"
	if todo.Completed {
		message = "Todo marquée comme complétée"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    todo,
	})
}

// Delete godoc
// @Summary Xóa todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	todo, err := h.todos.Delete(c.Context(), user.ID, c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Todo non trouvée")
	} else if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Todo supprimée avec succès",
		"data":    todo,
	})
}

// Filter godoc
// @Summary Lọc todos theo completed, priority, category
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Router /todos/filter [get]
func (h *TodoHandler) Filter(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var filter store.Filter
	applied := fiber.Map{}

	if raw := c.Query("completed"); raw != "" {
		completed := raw == "true"
		filter.Completed = &completed
		applied["completed"] = raw
	}
	if priority := c.Query("priority"); priority != "" {
		filter.Priority = priority
		applied["priority"] = priority
	}
	if category := c.Query("category"); category != "" {
		filter.Category = category
		applied["category"] = category
	}

	todos, err := h.todos.Filter(c.Context(), user.ID, filter)
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(todos),
		"filters": applied,
		"data":    todos,
	})
}

// Search godoc
// @Summary Tìm todos theo từ khóa trong title hoặc description
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param q query string true "từ khóa"
// @Router /todos/search [get]
func (h *TodoHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return fail(c, fiber.StatusBadRequest, "Terme de recherche requis")
	}

	user := middleware.CurrentUser(c)
	todos, err := h.todos.Search(c.Context(), user.ID, term)
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"count":      len(todos),
		"searchTerm": term,
		"data":       todos,
	})
}

// Stats godoc
// @Summary Thống kê todos của người dùng
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Router /todos/stats [get]
func (h *TodoHandler) Stats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	stats, err := h.todos.Stats(c.Context(), user.ID)
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}
