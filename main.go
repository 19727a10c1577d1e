package main

import (
	"github.com/todoapp/go-todo/app"
)

// @title Todo App API
// @version 1.0
// @description API quản lý todos theo từng người dùng: đăng ký/đăng nhập, CRUD, lọc, tìm kiếm, thống kê và file đính kèm
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
