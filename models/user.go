package models

import "time"

// User là tài khoản của một người dùng. Password giữ hash bcrypt,
// không bao giờ xuất hiện trong JSON.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
