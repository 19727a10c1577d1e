package models

import "time"

// Các giá trị hợp lệ cho priority và category
var (
	Priorities = []string{"low", "medium", "high"}
	Categories = []string{"work", "personal", "urgent", "other"}
)

const (
	DefaultPriority = "medium"
	DefaultCategory = "other"
)

// Todo là cấu trúc dữ liệu của một todo, luôn thuộc về đúng một User
type Todo struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Completed   bool         `json:"completed"`
	Priority    string       `json:"priority"`
	Category    string       `json:"category"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	UserID      int64        `json:"user"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Attachment là metadata của một file đính kèm trên todo
type Attachment struct {
	Filename     string    `json:"filename"`     // tên file trên server (duy nhất)
	OriginalName string    `json:"originalname"` // tên file gốc
	MimeType     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// Stats là khối thống kê todos của một người dùng
type Stats struct {
	Total          int           `json:"total"`
	Completed      int           `json:"completed"`
	Pending        int           `json:"pending"`
	CompletionRate string        `json:"completionRate"`
	ByPriority     PriorityStats `json:"byPriority"`
	ByCategory     CategoryStats `json:"byCategory"`
}

type PriorityStats struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type CategoryStats struct {
	Work     int `json:"work"`
	Personal int `json:"personal"`
	Urgent   int `json:"urgent"`
	Other    int `json:"other"`
}

// Pagination là khối phân trang trả về cùng danh sách todos
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	Limit       int  `json:"limit"`
	TotalTodos  int  `json:"totalTodos"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}
