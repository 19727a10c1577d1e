package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/todoapp/go-todo/middleware"
	"github.com/todoapp/go-todo/models"
	"github.com/todoapp/go-todo/store"
	"github.com/todoapp/go-todo/token"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler xử lý đăng ký, đăng nhập và xem hồ sơ
type AuthHandler struct {
	users UserStore
}

func NewAuthHandler(users UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

type credentialsInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userSummary không bao giờ chứa hash mật khẩu
func userSummary(user *models.User) fiber.Map {
	return fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}
}

// Register godoc
// @Summary Tạo tài khoản mới
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}

	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	// Hash mật khẩu trước khi lưu; plaintext không bao giờ chạm database
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return serverError(c, err)
	}

	user, err := h.users.Create(c.Context(), name, email, string(hash))
	if errors.Is(err, store.ErrDuplicateEmail) {
		return fail(c, fiber.StatusBadRequest, "Cet email est déjà utilisé")
	} else if err != nil {
		return serverError(c, err)
	}

	signed, err := token.Issue(user.ID)
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Inscription réussie",
		"token":   signed,
		"user":    userSummary(user),
	})
}

// Login godoc
// @Summary Đăng nhập
// @Tags auth
// @Accept json
// @Produce json
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}

	// Email sai hay mật khẩu sai đều trả về cùng một thông báo
	// để không dò được tài khoản nào tồn tại
	user, err := h.users.FindByEmail(c.Context(), normalizeEmail(input.Email))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusUnauthorized, "Email ou mot de passe incorrect")
	} else if err != nil {
		return serverError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return fail(c, fiber.StatusUnauthorized, "Email ou mot de passe incorrect")
	}

	signed, err := token.Issue(user.ID)
	if err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Connexion réussie",
		"token":   signed,
		"user":    userSummary(user),
	})
}

// Me godoc
// @Summary Hồ sơ của người dùng đang đăng nhập
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    middleware.CurrentUser(c),
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
