package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LoadENV nạp biến môi trường từ file .env nếu có.
// JWT_SECRET bắt buộc, thiếu là dừng khởi động.
func LoadENV() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("you must set your 'JWT_SECRET' environmental variable")
	}

	return nil
}

// Port trả về cổng lắng nghe, mặc định 3000
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "3000"
}

// UploadDir trả về thư mục lưu file đính kèm, mặc định "uploads"
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}
