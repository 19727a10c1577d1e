// Package upload giữ chính sách file đính kèm: loại file cho phép,
// giới hạn kích thước, tên lưu trữ và thao tác filesystem.
package upload

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize là giới hạn 5 MiB cho một file upload,
// áp ở tầng transport qua BodyLimit của Fiber
const MaxFileSize = 5 * 1024 * 1024

// ErrMessage trả cho client khi loại file không được phép
const ErrMessage = "Type de fichier non autorisé. Formats acceptés : jpeg, jpg, png, gif, pdf, doc, docx, txt"

var allowedExtensions = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"pdf":  true,
	"doc":  true,
	"docx": true,
	"txt":  true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/jpg":          true,
	"image/png":          true,
	"image/gif":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// Allowed kiểm tra CẢ phần mở rộng lẫn MIME type khai báo;
// chỉ một trong hai nằm trong danh sách là chưa đủ
func Allowed(originalName, mimeType string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(originalName)), ".")
	mime := strings.ToLower(strings.TrimSpace(mimeType))

	// MIME có thể kèm tham số, ví dụ "text/plain; charset=utf-8"
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	return allowedExtensions[ext] && allowedMimeTypes[mime]
}

// StoredName sinh tên file duy nhất trên server, giữ lại phần mở rộng gốc
func StoredName(originalName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
}

// EnsureDir tạo thư mục upload nếu chưa có
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Remove xóa file vật lý; file đã biến mất từ trước không coi là lỗi
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
