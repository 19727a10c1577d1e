package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"
	"github.com/todoapp/go-todo/models"
)

// multipartFile dựng body multipart với một part "file" duy nhất
func multipartFile(t *testing.T, filename, mimeType string, content []byte) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	qt.Assert(t, err, qt.IsNil)
	_, err = part.Write(content)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, writer.Close(), qt.IsNil)

	return buf, writer.FormDataContentType()
}

func (e *testEnv) upload(t *testing.T, auth, todoID, filename, mimeType string, content []byte) (int, map[string]any) {
	body, contentType := multipartFile(t, filename, mimeType, content)
	resp, decoded := e.do(t, "POST", "/todos/"+todoID+"/attachments", auth, body, contentType)
	return resp.StatusCode, decoded
}

func TestUploadNoFile(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	user, auth := env.signup(t, "Alice", "alice@example.com")
	todo := env.seedTodo(t, user.ID, nil)

	resp, body := env.doJSON(t, "POST", "/todos/"+todo.ID+"/attachments", auth, "")
	c.Assert(resp.StatusCode, qt.Equals, fiber.StatusBadRequest)
	c.Assert(body["erreur"], qt.Equals, "Aucun fichier fourni")
}

func TestUploadTodoNotFound(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	_, auth := env.signup(t, "Alice", "alice@example.com")
	bob, _ := env.signup(t, "Bob", "bob@example.com")
	bobTodo := env.seedTodo(t, bob.ID, nil)

	// todo của người khác: 404 như không tồn tại
	status, body := env.upload(t, auth, bobTodo.ID, "note.txt", "text/plain", []byte("x"))
	c.Assert(status, qt.Equals, fiber.StatusNotFound)
	c.Assert(body["erreur"], qt.Equals, "Todo non trouvée")
}

func TestUploadRejectsDisallowedTypes(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	user, auth := env.signup(t, "Alice", "alice@example.com")
	todo := env.seedTodo(t, user.ID, nil)

	// extension hợp lệ, MIME khai báo thì không
	status, body := env.upload(t, auth, todo.ID, "photo.jpg", "application/octet-stream", []byte("x"))
	c.Assert(status, qt.Equals, fiber.StatusBadRequest)
	c.Assert(body["success"], qt.Equals, false)

	// MIME hợp lệ, extension thì không
	status, _ = env.upload(t, auth, todo.ID, "script.exe", "image/jpeg", []byte("x"))
	c.Assert(status, qt.Equals, fiber.StatusBadRequest)

	// không file nào được ghi xuống thư mục upload
	entries, err := os.ReadDir(env.dir)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 0)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	user, auth := env.signup(t, "Alice", "alice@example.com")
	todo := env.seedTodo(t, user.ID, nil)

	// 6 Mo vượt BodyLimit: bị chặn trước khi tới handler
	status, body := env.upload(t, auth, todo.ID, "gros.pdf", "application/pdf", make([]byte, 6*1024*1024))
	c.Assert(status, qt.Equals, fiber.StatusBadRequest)
	c.Assert(body["success"], qt.Equals, false)
	c.Assert(body["erreur"], qt.Equals, "Fichier trop volumineux (5 Mo maximum)")

	entries, err := os.ReadDir(env.dir)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 0)
}

func TestUploadSuccess(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	user, auth := env.signup(t, "Alice", "alice@example.com")
	todo := env.seedTodo(t, user.ID, nil)

	status, body := env.upload(t, auth, todo.ID, "Rapport Final.pdf", "application/pdf", []byte("%PDF-1.4"))
	c.Assert(status, qt.Equals, fiber.StatusOK)
	c.Assert(body["message"], qt.Equals, "Fichier uploadé avec succès")

	file := body["file"].(map[string]any)
	c.Assert(file["originalname"], qt.Equals, "Rapport Final.pdf")
	c.Assert(file["mimetype"], qt.Equals, "application/pdf")
	c.Assert(file["size"], qt.Equals, float64(len("%PDF-1.4")))

	// tên lưu trữ do server sinh, giữ extension gốc
	stored := file["filename"].(string)
	c.Assert(stored, qt.Not(qt.Equals), "Rapport Final.pdf")
	c.Assert(filepath.Ext(stored), qt.Equals, ".pdf")

	// file vật lý đã nằm trong thư mục upload
	raw, err := os.ReadFile(filepath.Join(env.dir, stored))
	c.Assert(err, qt.IsNil)
	c.Assert(string(raw), qt.Equals, "%PDF-1.4")

	// metadata đã gắn vào todo
	attachments := env.todos.todos[todo.ID].Attachments
	c.Assert(attachments, qt.HasLen, 1)
	c.Assert(attachments[0].Filename, qt.Equals, stored)
}

func TestDeleteAttachmentNotFound(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	user, auth := env.signup(t, "Alice", "alice@example.com")
	todo := env.seedTodo(t, user.ID, func(td *models.Todo) {
		td.Attachments = []models.Attachment{{Filename: "real.txt", Path: filepath.Join(t.TempDir(), "real.txt")}}
	})

	calls := env.todos.updateAttachmentsCalls
	resp, body := env.doJSON(t, "DELETE", "/todos/"+todo.ID+"/attachments/ghost.txt", auth, "")
	c.Assert(resp.StatusCode, qt.Equals, fiber.StatusNotFound)
	c.Assert(body["erreur"], qt.Equals, "Fichier non trouvé")

	// todo không bị đụng tới
	c.Assert(env.todos.updateAttachmentsCalls, qt.Equals, calls)
	c.Assert(env.todos.todos[todo.ID].Attachments, qt.HasLen, 1)
}

func TestDeleteAttachment(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	user, auth := env.signup(t, "Alice", "alice@example.com")
	todo := env.seedTodo(t, user.ID, nil)

	status, body := env.upload(t, auth, todo.ID, "note.txt", "text/plain", []byte("hello"))
	c.Assert(status, qt.Equals, fiber.StatusOK)
	stored := body["file"].(map[string]any)["filename"].(string)

	resp, body := env.doJSON(t, "DELETE", "/todos/"+todo.ID+"/attachments/"+stored, auth, "")
	c.Assert(resp.StatusCode, qt.Equals, fiber.StatusOK)
	c.Assert(body["message"], qt.Equals, "Fichier supprimé avec succès")

	// metadata lẫn file vật lý đều biến mất
	c.Assert(env.todos.todos[todo.ID].Attachments, qt.HasLen, 0)
	_, err := os.Stat(filepath.Join(env.dir, stored))
	c.Assert(os.IsNotExist(err), qt.IsTrue)
}

func TestDeleteAttachmentMissingPhysicalFile(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(t)
	user, auth := env.signup(t, "Alice", "alice@example.com")
	todo := env.seedTodo(t, user.ID, nil)

	status, body := env.upload(t, auth, todo.ID, "note.txt", "text/plain", []byte("hello"))
	c.Assert(status, qt.Equals, fiber.StatusOK)
	stored := body["file"].(map[string]any)["filename"].(string)

	// file vật lý đã bị xóa tay từ trước: metadata vẫn phải gỡ được
	c.Assert(os.Remove(filepath.Join(env.dir, stored)), qt.IsNil)

	resp, _ := env.doJSON(t, "DELETE", "/todos/"+todo.ID+"/attachments/"+stored, auth, "")
	c.Assert(resp.StatusCode, qt.Equals, fiber.StatusOK)
	c.Assert(env.todos.todos[todo.ID].Attachments, qt.HasLen, 0)
}
