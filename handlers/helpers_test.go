package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/todoapp/go-todo/app"
	"github.com/todoapp/go-todo/handlers"
	"github.com/todoapp/go-todo/models"
	"github.com/todoapp/go-todo/router"
	"github.com/todoapp/go-todo/store"
	"github.com/todoapp/go-todo/token"
)

// fakeUserStore là credential store trong bộ nhớ cho test
type fakeUserStore struct {
	nextID  int64
	byEmail map[string]*models.User
	byID    map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: map[string]*models.User{},
		byID:    map[int64]*models.User{},
	}
}

func (s *fakeUserStore) Create(_ context.Context, name, email, passwordHash string) (*models.User, error) {
	if _, exists := s.byEmail[email]; exists {
		return nil, store.ErrDuplicateEmail
	}

	s.nextID++
	user := &models.User{
		ID:        s.nextID,
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.byEmail[email] = user
	s.byID[user.ID] = user
	return &models.User{ID: user.ID, Name: name, Email: email}, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *user
	copied.Password = ""
	return &copied, nil
}

// fakeTodoStore là todo store trong bộ nhớ, mô phỏng phạm vi theo owner
// giống store thật: id lạ, id của người khác và id sai định dạng đều là ErrNotFound
type fakeTodoStore struct {
	todos map[string]*models.Todo

	updateAttachmentsCalls int
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{todos: map[string]*models.Todo{}}
}

func (s *fakeTodoStore) find(userID int64, id string) (*models.Todo, error) {
	todo, ok := s.todos[id]
	if !ok || todo.UserID != userID {
		return nil, store.ErrNotFound
	}
	return todo, nil
}

func (s *fakeTodoStore) owned(userID int64) []models.Todo {
	var list []models.Todo
	for _, todo := range s.todos {
		if todo.UserID == userID {
			list = append(list, *todo)
		}
	}
	// mới tạo trước, như sort mặc định của store thật
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

func (s *fakeTodoStore) Create(_ context.Context, todo *models.Todo) error {
	todo.ID = uuid.NewString()
	if todo.Attachments == nil {
		todo.Attachments = []models.Attachment{}
	}
	todo.CreatedAt = time.Now().Add(time.Duration(len(s.todos)) * time.Millisecond)
	todo.UpdatedAt = todo.CreatedAt
	copied := *todo
	s.todos[todo.ID] = &copied
	return nil
}

func (s *fakeTodoStore) List(_ context.Context, userID int64, opts store.ListOptions) ([]models.Todo, int, error) {
	owned := s.owned(userID)
	total := len(owned)

	start := (opts.Page - 1) * opts.Limit
	if start >= total {
		return []models.Todo{}, total, nil
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	return owned[start:end], total, nil
}

func (s *fakeTodoStore) Get(_ context.Context, userID int64, id string) (*models.Todo, error) {
	todo, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	copied := *todo
	return &copied, nil
}

func (s *fakeTodoStore) Update(_ context.Context, userID int64, id string, patch store.TodoPatch) (*models.Todo, error) {
	todo, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		todo.Priority = *patch.Priority
	}
	if patch.Category != nil {
		todo.Category = *patch.Category
	}
	if patch.Deadline != nil {
		todo.Deadline = patch.Deadline
	}
	todo.UpdatedAt = time.Now()

	copied := *todo
	return &copied, nil
}

func (s *fakeTodoStore) Toggle(_ context.Context, userID int64, id string) (*models.Todo, error) {
	todo, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	todo.Completed = !todo.Completed
	copied := *todo
	return &copied, nil
}

func (s *fakeTodoStore) Delete(_ context.Context, userID int64, id string) (*models.Todo, error) {
	todo, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	delete(s.todos, id)
	return todo, nil
}

func (s *fakeTodoStore) Filter(_ context.Context, userID int64, filter store.Filter) ([]models.Todo, error) {
	matches := []models.Todo{}
	for _, todo := range s.owned(userID) {
		if filter.Completed != nil && todo.Completed != *filter.Completed {
			continue
		}
		if filter.Priority != "" && todo.Priority != filter.Priority {
			continue
		}
		if filter.Category != "" && todo.Category != filter.Category {
			continue
		}
		matches = append(matches, todo)
	}
	return matches, nil
}

func (s *fakeTodoStore) Search(_ context.Context, userID int64, term string) ([]models.Todo, error) {
	term = strings.ToLower(term)
	matches := []models.Todo{}
	for _, todo := range s.owned(userID) {
		if strings.Contains(strings.ToLower(todo.Title), term) ||
			strings.Contains(strings.ToLower(todo.Description), term) {
			matches = append(matches, todo)
		}
	}
	return matches, nil
}

func (s *fakeTodoStore) Stats(_ context.Context, userID int64) (*models.Stats, error) {
	stats := &models.Stats{}
	for _, todo := range s.owned(userID) {
		stats.Total++
		if todo.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		switch todo.Priority {
		case "high":
			stats.ByPriority.High++
		case "medium":
			stats.ByPriority.Medium++
		case "low":
			stats.ByPriority.Low++
		}
		switch todo.Category {
		case "work":
			stats.ByCategory.Work++
		case "personal":
			stats.ByCategory.Personal++
		case "urgent":
			stats.ByCategory.Urgent++
		case "other":
			stats.ByCategory.Other++
		}
	}

	if stats.Total == 0 {
		stats.CompletionRate = "0%"
	} else {
		stats.CompletionRate = fmt.Sprintf("%.1f%%",
			float64(stats.Completed)/float64(stats.Total)*100)
	}
	return stats, nil
}

func (s *fakeTodoStore) UpdateAttachments(_ context.Context, userID int64, id string, attachments []models.Attachment) (*models.Todo, error) {
	s.updateAttachmentsCalls++

	todo, err := s.find(userID, id)
	if err != nil {
		return nil, err
	}
	todo.Attachments = attachments
	copied := *todo
	return &copied, nil
}

// testEnv dựng app Fiber với đầy đủ route thật và các store giả
type testEnv struct {
	app   *fiber.App
	users *fakeUserStore
	todos *fakeTodoStore
	dir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Setenv("JWT_SECRET", "test-secret")

	users := newFakeUserStore()
	todos := newFakeTodoStore()
	dir := t.TempDir()

	// cấu hình Fiber y hệt server thật: BodyLimit + error handler toàn cục
	srv := app.NewFiber()
	router.SetupRoutes(srv,
		handlers.NewAuthHandler(users),
		handlers.NewTodoHandler(todos),
		handlers.NewAttachmentHandler(todos, dir),
		users, dir)

	return &testEnv{app: srv, users: users, todos: todos, dir: dir}
}

// signup tạo user trực tiếp trong fake store và trả về bearer token
func (e *testEnv) signup(t *testing.T, name, email string) (*models.User, string) {
	user, err := e.users.Create(context.Background(), name, email, "$2a$10$fakehash")
	qt.Assert(t, err, qt.IsNil)

	signed, err := token.Issue(user.ID)
	qt.Assert(t, err, qt.IsNil)
	return user, "Bearer " + signed
}

// seedTodo chèn một todo trực tiếp vào fake store
func (e *testEnv) seedTodo(t *testing.T, userID int64, mutate func(*models.Todo)) *models.Todo {
	todo := &models.Todo{
		UserID:   userID,
		Title:    "Tâche de test",
		Priority: models.DefaultPriority,
		Category: models.DefaultCategory,
	}
	if mutate != nil {
		mutate(todo)
	}
	qt.Assert(t, e.todos.Create(context.Background(), todo), qt.IsNil)
	return todo
}

func (e *testEnv) do(t *testing.T, method, path, auth string, body io.Reader, contentType string) (*http.Response, map[string]any) {
	req := httptest.NewRequest(method, path, body)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := e.app.Test(req)
	qt.Assert(t, err, qt.IsNil)

	decoded := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	qt.Assert(t, err, qt.IsNil)
	if len(raw) > 0 {
		qt.Assert(t, json.Unmarshal(raw, &decoded), qt.IsNil,
			qt.Commentf("body: %s", raw))
	}
	return resp, decoded
}

func (e *testEnv) doJSON(t *testing.T, method, path, auth, body string) (*http.Response, map[string]any) {
	return e.do(t, method, path, auth, strings.NewReader(body), "application/json")
}
