package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/todoapp/go-todo/models"
)

// Todos là todo store trên bảng todos. Mọi phương thức đều nhận userID
// của người gọi và chỉ chạm tới các dòng có user_id tương ứng.
type Todos struct {
	db *sql.DB
}

func NewTodos(db *sql.DB) *Todos {
	return &Todos{db: db}
}

// ListOptions là tham số phân trang và sắp xếp cho List
type ListOptions struct {
	Page  int
	Limit int
	Sort  string // tên field, tiền tố "-" nghĩa là giảm dần
}

// Filter là bộ lọc AND; field nil/rỗng thì bỏ qua, không coi là "match any"
type Filter struct {
	Completed *bool
	Priority  string
	Category  string
}

// TodoPatch chứa các field được gửi lên khi update; field nil giữ nguyên
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	Category    *string
	Deadline    *time.Time
}

const todoColumns = "id, user_id, title, description, completed, priority, category, deadline, attachments, created_at, updated_at"

// Các field được phép sắp xếp, map từ tên JSON sang tên cột
var sortColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"completed":   "completed",
	"priority":    "priority",
	"category":    "category",
	"deadline":    "deadline",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// orderClause dịch sort directive thành ORDER BY an toàn.
// Field lạ hoặc rỗng rơi về mặc định: mới tạo trước.
func orderClause(sort string) string {
	field, dir := sort, "ASC"
	if strings.HasPrefix(sort, "-") {
		field, dir = sort[1:], "DESC"
	}

	col, ok := sortColumns[field]
	if !ok {
		return "created_at DESC"
	}
	return col + " " + dir
}

// parseID kiểm tra định dạng UUID. Id sai định dạng trả về ErrNotFound
// giống hệt id không tồn tại, tránh để lộ thông tin qua mã lỗi.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrNotFound
	}
	return parsed.String(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	var (
		todo        models.Todo
		deadline    sql.NullTime
		attachments []byte
	)

	err := row.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Description,
		&todo.Completed, &todo.Priority, &todo.Category, &deadline,
		&attachments, &todo.CreatedAt, &todo.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	if deadline.Valid {
		t := deadline.Time
		todo.Deadline = &t
	}

	todo.Attachments = []models.Attachment{}
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &todo.Attachments); err != nil {
			return nil, fmt.Errorf("decode attachments: %w", err)
		}
	}

	return &todo, nil
}

// Create chèn todo mới với id UUID sinh ngẫu nhiên
func (s *Todos) Create(ctx context.Context, todo *models.Todo) error {
	todo.ID = uuid.NewString()
	todo.Attachments = []models.Attachment{}

	return s.db.QueryRowContext(ctx,
		`INSERT INTO todos (id, user_id, title, description, completed, priority, category, deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		todo.ID, todo.UserID, todo.Title, todo.Description,
		todo.Completed, todo.Priority, todo.Category, todo.Deadline,
	).Scan(&todo.CreatedAt, &todo.UpdatedAt)
}

// List trả về một trang todos của user cùng tổng số dòng khớp
func (s *Todos) List(ctx context.Context, userID int64, opts ListOptions) ([]models.Todo, int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM todos WHERE user_id = $1", userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (opts.Page - 1) * opts.Limit
	query := fmt.Sprintf(
		"SELECT %s FROM todos WHERE user_id = $1 ORDER BY %s LIMIT $2 OFFSET $3",
		todoColumns, orderClause(opts.Sort),
	)

	todos, err := s.queryTodos(ctx, query, userID, opts.Limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

// Get tìm một todo theo id trong phạm vi của user
func (s *Todos) Get(ctx context.Context, userID int64, id string) (*models.Todo, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM todos WHERE user_id = $1 AND id = $2", todoColumns),
		userID, id)
	return scanTodo(row)
}

// Update chỉ ghi đè các field có mặt trong patch, trả về todo sau khi sửa
func (s *Todos) Update(ctx context.Context, userID int64, id string, patch TodoPatch) (*models.Todo, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	sets := []string{"updated_at = now()"}
	args := []any{userID, id}

	appendSet := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.Completed != nil {
		appendSet("completed", *patch.Completed)
	}
	if patch.Priority != nil {
		appendSet("priority", *patch.Priority)
	}
	if patch.Category != nil {
		appendSet("category", *patch.Category)
	}
	if patch.Deadline != nil {
		appendSet("deadline", *patch.Deadline)
	}

	query := fmt.Sprintf(
		"UPDATE todos SET %s WHERE user_id = $1 AND id = $2 RETURNING %s",
		strings.Join(sets, ", "), todoColumns,
	)

	return scanTodo(s.db.QueryRowContext(ctx, query, args...))
}

// Toggle đảo trạng thái completed trong một câu lệnh duy nhất
// để cập nhật đồng thời trên cùng một todo không ghi đè lẫn nhau
func (s *Todos) Toggle(ctx context.Context, userID int64, id string) (*models.Todo, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf(
			"UPDATE todos SET completed = NOT completed, updated_at = now() WHERE user_id = $1 AND id = $2 RETURNING %s",
			todoColumns,
		),
		userID, id)
	return scanTodo(row)
}

// Delete xóa todo và trả về bản ghi vừa xóa làm payload xác nhận
func (s *Todos) Delete(ctx context.Context, userID int64, id string) (*models.Todo, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf("DELETE FROM todos WHERE user_id = $1 AND id = $2 RETURNING %s", todoColumns),
		userID, id)
	return scanTodo(row)
}

// Filter lọc todos theo các tiêu chí AND, luôn kèm phạm vi user
func (s *Todos) Filter(ctx context.Context, userID int64, filter Filter) ([]models.Todo, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		where = append(where, fmt.Sprintf("completed = $%d", len(args)))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		where = append(where, fmt.Sprintf("priority = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}

	query := fmt.Sprintf(
		"SELECT %s FROM todos WHERE %s ORDER BY created_at DESC",
		todoColumns, strings.Join(where, " AND "),
	)

	return s.queryTodos(ctx, query, args...)
}

// likeEscaper vô hiệu hóa wildcard của LIKE trong input người dùng,
// để "50%" chỉ khớp đúng chuỗi "50%" chứ không khớp mọi thứ bắt đầu bằng "50"
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// Search tìm chuỗi con (không phân biệt hoa thường) trong title hoặc description
func (s *Todos) Search(ctx context.Context, userID int64, term string) ([]models.Todo, error) {
	pattern := likePattern(term)
	query := fmt.Sprintf(
		`SELECT %s FROM todos
		 WHERE user_id = $1 AND (title ILIKE $2 OR description ILIKE $2)
		 ORDER BY created_at DESC`,
		todoColumns,
	)

	return s.queryTodos(ctx, query, userID, pattern)
}

// Stats đếm todos của user theo trạng thái, priority và category.
// Các COUNT chạy tuần tự độc lập, chấp nhận lệch nhẹ khi có ghi đồng thời.
func (s *Todos) Stats(ctx context.Context, userID int64) (*models.Stats, error) {
	stats := &models.Stats{}

	counts := []struct {
		dest  *int
		where string
		args  []any
	}{
		{&stats.Total, "user_id = $1", []any{userID}},
		{&stats.Completed, "user_id = $1 AND completed = TRUE", []any{userID}},
		{&stats.Pending, "user_id = $1 AND completed = FALSE", []any{userID}},
		{&stats.ByPriority.High, "user_id = $1 AND priority = $2", []any{userID, "high"}},
		{&stats.ByPriority.Medium, "user_id = $1 AND priority = $2", []any{userID, "medium"}},
		{&stats.ByPriority.Low, "user_id = $1 AND priority = $2", []any{userID, "low"}},
		{&stats.ByCategory.Work, "user_id = $1 AND category = $2", []any{userID, "work"}},
		{&stats.ByCategory.Personal, "user_id = $1 AND category = $2", []any{userID, "personal"}},
		{&stats.ByCategory.Urgent, "user_id = $1 AND category = $2", []any{userID, "urgent"}},
		{&stats.ByCategory.Other, "user_id = $1 AND category = $2", []any{userID, "other"}},
	}

	for _, c := range counts {
		err := s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM todos WHERE "+c.where, c.args...,
		).Scan(c.dest)
		if err != nil {
			return nil, err
		}
	}

	stats.CompletionRate = completionRate(stats.Completed, stats.Total)
	return stats, nil
}

// completionRate làm tròn một chữ số thập phân, "0%" khi chưa có todo nào
func completionRate(completed, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(completed)/float64(total)*100)
}

// UpdateAttachments thay toàn bộ danh sách attachment của một todo
func (s *Todos) UpdateAttachments(ctx context.Context, userID int64, id string, attachments []models.Attachment) (*models.Todo, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if attachments == nil {
		attachments = []models.Attachment{}
	}
	encoded, err := json.Marshal(attachments)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf(
			"UPDATE todos SET attachments = $3, updated_at = now() WHERE user_id = $1 AND id = $2 RETURNING %s",
			todoColumns,
		),
		userID, id, encoded)
	return scanTodo(row)
}

func (s *Todos) queryTodos(ctx context.Context, query string, args ...any) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}

	return todos, rows.Err()
}
