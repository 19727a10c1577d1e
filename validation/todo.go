package validation

import "github.com/todoapp/go-todo/models"

// CreateTodoRules là ràng buộc cho POST /todos
func CreateTodoRules() []*FieldRules {
	return []*FieldRules{
		Field("title").
			Required("Le titre est requis").
			MinLen(3, "Le titre doit faire au moins 3 caractères").
			MaxLen(100, "Le titre ne peut pas dépasser 100 caractères"),
		Field("description").
			MaxLen(500, "La description ne peut pas dépasser 500 caractères"),
		Field("priority").
			OneOf(models.Priorities, "La priorité doit être : low, medium ou high"),
		Field("category").
			OneOf(models.Categories, "La catégorie doit être : work, personal, urgent ou other"),
		Field("deadline").
			Date("La deadline doit être une date valide").
			NotBeforeToday("La deadline ne peut pas être dans le passé"),
	}
}

// UpdateTodoRules là ràng buộc cho PUT /todos/:id — mọi field đều tùy chọn
func UpdateTodoRules() []*FieldRules {
	return []*FieldRules{
		Field("title").
			MinLen(3, "Le titre doit faire au moins 3 caractères").
			MaxLen(100, "Le titre ne peut pas dépasser 100 caractères"),
		Field("description").
			MaxLen(500, "La description ne peut pas dépasser 500 caractères"),
		Field("priority").
			OneOf(models.Priorities, "La priorité doit être : low, medium ou high"),
		Field("category").
			OneOf(models.Categories, "La catégorie doit être : work, personal, urgent ou other"),
		Field("completed").
			Bool("Le statut completed doit être true ou false"),
		Field("deadline").
			Date("La deadline doit être une date valide").
			NotBeforeToday("La deadline ne peut pas être dans le passé"),
	}
}
