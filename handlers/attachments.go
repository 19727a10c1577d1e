package handlers

import (
	"errors"
	"path/filepath"
	"slices"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/todoapp/go-todo/middleware"
	"github.com/todoapp/go-todo/models"
	"github.com/todoapp/go-todo/store"
	"github.com/todoapp/go-todo/upload"
)

// AttachmentHandler quản lý file đính kèm trên todos
type AttachmentHandler struct {
	todos TodoStore
	dir   string // thư mục lưu file upload
}

func NewAttachmentHandler(todos TodoStore, dir string) *AttachmentHandler {
	return &AttachmentHandler{todos: todos, dir: dir}
}

// Upload godoc
// @Summary Đính kèm một file vào todo
// @Tags attachments
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Router /todos/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Aucun fichier fourni")
	}

	user := middleware.CurrentUser(c)
	todo, err := h.todos.Get(c.Context(), user.ID, c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Todo non trouvée")
	} else if err != nil {
		return serverError(c, err)
	}

	// Kiểm tra cả phần mở rộng lẫn MIME type khai báo trước khi ghi đĩa
	if !upload.Allowed(file.Filename, file.Header.Get("Content-Type")) {
		return fail(c, fiber.StatusBadRequest, upload.ErrMessage)
	}

	if err := upload.EnsureDir(h.dir); err != nil {
		return serverError(c, err)
	}

	stored := upload.StoredName(file.Filename)
	path := filepath.Join(h.dir, stored)
	if err := c.SaveFile(file, path); err != nil {
		return serverError(c, err)
	}

	attachment := models.Attachment{
		Filename:     stored,
		OriginalName: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
		Size:         file.Size,
		Path:         path,
		UploadedAt:   time.Now(),
	}

	updated, err := h.todos.UpdateAttachments(c.Context(), user.ID, todo.ID,
		append(todo.Attachments, attachment))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Todo non trouvée")
	} else if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Fichier uploadé avec succès",
		"file": fiber.Map{
			"filename":     attachment.Filename,
			"originalname": attachment.OriginalName,
			"size":         attachment.Size,
			"mimetype":     attachment.MimeType,
		},
		"data": updated,
	})
}

// Delete godoc
// @Summary Gỡ một file đính kèm khỏi todo
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Router /todos/{id}/attachments/{filename} [delete]
func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	todo, err := h.todos.Get(c.Context(), user.ID, c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Todo non trouvée")
	} else if err != nil {
		return serverError(c, err)
	}

	filename := c.Params("filename")
	index := slices.IndexFunc(todo.Attachments, func(a models.Attachment) bool {
		return a.Filename == filename
	})
	if index == -1 {
		return fail(c, fiber.StatusNotFound, "Fichier non trouvé")
	}

	// Xóa file vật lý trước; file đã mất sẵn thì vẫn gỡ metadata
	if err := upload.Remove(todo.Attachments[index].Path); err != nil {
		return serverError(c, err)
	}

	remaining := slices.Delete(slices.Clone(todo.Attachments), index, index+1)
	updated, err := h.todos.UpdateAttachments(c.Context(), user.ID, todo.ID, remaining)
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Todo non trouvée")
	} else if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Fichier supprimé avec succès",
		"data":    updated,
	})
}
