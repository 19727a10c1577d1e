package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestAllowed(t *testing.T) {
	c := qt.New(t)

	// cả extension lẫn MIME đều phải nằm trong danh sách
	c.Assert(Allowed("photo.jpg", "image/jpeg"), qt.IsTrue)
	c.Assert(Allowed("photo.JPG", "image/jpeg"), qt.IsTrue)
	c.Assert(Allowed("doc.pdf", "application/pdf"), qt.IsTrue)
	c.Assert(Allowed("notes.txt", "text/plain"), qt.IsTrue)
	c.Assert(Allowed("notes.txt", "text/plain; charset=utf-8"), qt.IsTrue)
	c.Assert(Allowed("rapport.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document"), qt.IsTrue)

	// extension hợp lệ nhưng MIME thì không
	c.Assert(Allowed("photo.jpg", "application/octet-stream"), qt.IsFalse)
	// MIME hợp lệ nhưng extension thì không
	c.Assert(Allowed("script.exe", "image/png"), qt.IsFalse)
	// cả hai đều sai
	c.Assert(Allowed("script.sh", "application/x-sh"), qt.IsFalse)
	// không có extension
	c.Assert(Allowed("README", "text/plain"), qt.IsFalse)
}

func TestStoredName(t *testing.T) {
	c := qt.New(t)

	name := StoredName("Photo de Vacances.JPG")
	c.Assert(strings.HasSuffix(name, ".jpg"), qt.IsTrue)
	c.Assert(len(name) > len(".jpg"), qt.IsTrue)

	// hai lần gọi không bao giờ trùng tên
	c.Assert(StoredName("a.txt"), qt.Not(qt.Equals), StoredName("a.txt"))
}

func TestRemoveTolerantOfMissingFile(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "exists.txt")
	c.Assert(os.WriteFile(path, []byte("x"), 0o644), qt.IsNil)

	c.Assert(Remove(path), qt.IsNil)
	_, err := os.Stat(path)
	c.Assert(os.IsNotExist(err), qt.IsTrue)

	// file đã biến mất từ trước không phải lỗi
	c.Assert(Remove(filepath.Join(dir, "never-existed.txt")), qt.IsNil)
}
