// Package validation chạy các ràng buộc khai báo theo từng endpoint
// trước khi handler được gọi. Mọi vi phạm trong một request được gom
// lại trả về cùng nhau, không dừng ở lỗi đầu tiên.
package validation

import (
	"encoding/json"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var emailRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Các định dạng ngày chấp nhận cho deadline
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

type check struct {
	fn  func(value any) bool
	msg string
}

// FieldRules là chuỗi ràng buộc cho một field trong body
type FieldRules struct {
	name        string
	required    bool
	requiredMsg string
	checks      []check
}

func Field(name string) *FieldRules {
	return &FieldRules{name: name}
}

// Required: field phải có mặt và (nếu là chuỗi) không rỗng sau khi trim
func (f *FieldRules) Required(msg string) *FieldRules {
	f.required = true
	f.requiredMsg = msg
	return f
}

func (f *FieldRules) add(fn func(any) bool, msg string) *FieldRules {
	f.checks = append(f.checks, check{fn: fn, msg: msg})
	return f
}

// MinLen kiểm tra độ dài tối thiểu trên chuỗi đã trim
func (f *FieldRules) MinLen(n int, msg string) *FieldRules {
	return f.add(func(v any) bool {
		s, ok := asString(v)
		return ok && len([]rune(s)) >= n
	}, msg)
}

// MaxLen kiểm tra độ dài tối đa trên chuỗi đã trim
func (f *FieldRules) MaxLen(n int, msg string) *FieldRules {
	return f.add(func(v any) bool {
		s, ok := asString(v)
		return ok && len([]rune(s)) <= n
	}, msg)
}

// OneOf kiểm tra giá trị nằm trong danh sách cho phép
func (f *FieldRules) OneOf(allowed []string, msg string) *FieldRules {
	return f.add(func(v any) bool {
		s, ok := asString(v)
		return ok && slices.Contains(allowed, s)
	}, msg)
}

// Email kiểm tra định dạng email
func (f *FieldRules) Email(msg string) *FieldRules {
	return f.add(func(v any) bool {
		s, ok := asString(v)
		return ok && emailRegexp.MatchString(s)
	}, msg)
}

// Matches kiểm tra chuỗi khớp biểu thức chính quy
func (f *FieldRules) Matches(re *regexp.Regexp, msg string) *FieldRules {
	return f.add(func(v any) bool {
		s, ok := asString(v)
		return ok && re.MatchString(s)
	}, msg)
}

// Bool kiểm tra giá trị là boolean JSON
func (f *FieldRules) Bool(msg string) *FieldRules {
	return f.add(func(v any) bool {
		_, ok := v.(bool)
		return ok
	}, msg)
}

// Date kiểm tra giá trị là ngày hợp lệ theo một trong các định dạng ISO
func (f *FieldRules) Date(msg string) *FieldRules {
	return f.add(func(v any) bool {
		s, ok := asString(v)
		if !ok {
			return false
		}
		_, ok = ParseDate(s)
		return ok
	}, msg)
}

// NotBeforeToday từ chối ngày sớm hơn 00:00 hôm nay (bỏ phần giờ khi so sánh)
func (f *FieldRules) NotBeforeToday(msg string) *FieldRules {
	return f.add(func(v any) bool {
		s, ok := asString(v)
		if !ok {
			return false
		}
		date, ok := ParseDate(s)
		if !ok {
			// định dạng sai đã có thông báo riêng từ Date
			return true
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
		return !date.Before(today)
	}, msg)
}

// validate gom mọi thông báo vi phạm của field này vào out.
// Field vắng mặt: chỉ báo lỗi nếu Required; các check còn lại bỏ qua.
func (f *FieldRules) validate(body map[string]any, out *[]string) {
	value, present := body[f.name]
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		present = false
	}
	if value == nil {
		present = false
	}

	if !present {
		if f.required {
			*out = append(*out, f.requiredMsg)
		}
		return
	}

	for _, c := range f.checks {
		if !c.fn(value) {
			*out = append(*out, c.msg)
		}
	}
}

// Validate chạy toàn bộ rules trên body, trả về danh sách thông báo theo thứ tự
func Validate(body map[string]any, rules []*FieldRules) []string {
	var messages []string
	for _, rule := range rules {
		rule.validate(body, &messages)
	}
	return messages
}

// Body trả về middleware Fiber chạy rules trước handler;
// có vi phạm thì trả 400 và handler không bao giờ được gọi
func Body(rules ...*FieldRules) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := map[string]any{}
		if len(c.Body()) > 0 {
			if err := json.Unmarshal(c.Body(), &body); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"erreur":  "Corps de requête invalide",
				})
			}
		}

		if messages := Validate(body, rules); len(messages) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"erreur":  messages,
			})
		}

		return c.Next()
	}
}

// ParseDate thử lần lượt các định dạng ISO chấp nhận được
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}
