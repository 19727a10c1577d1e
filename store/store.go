// Package store chứa tầng truy cập PostgreSQL cho users và todos.
// Mọi truy vấn todo đều bị ràng buộc theo user_id của chủ sở hữu.
package store

import "errors"

var (
	// ErrNotFound dùng chung cho: id không tồn tại, id thuộc người khác,
	// hoặc id sai định dạng — cố ý không phân biệt được từ bên ngoài
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail khi email đăng ký đã tồn tại
	ErrDuplicateEmail = errors.New("email already registered")
)
