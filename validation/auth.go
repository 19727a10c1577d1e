package validation

import "regexp"

var digitRegexp = regexp.MustCompile(`\d`)

// RegisterRules là ràng buộc cho POST /auth/register
func RegisterRules() []*FieldRules {
	return []*FieldRules{
		Field("name").
			Required("Le nom est requis").
			MinLen(2, "Le nom doit faire au moins 2 caractères").
			MaxLen(50, "Le nom ne peut pas dépasser 50 caractères"),
		Field("email").
			Required("L'email est requis").
			Email("Email invalide"),
		Field("password").
			Required("Le mot de passe est requis").
			MinLen(6, "Le mot de passe doit faire au moins 6 caractères").
			MaxLen(100, "Le mot de passe ne peut pas dépasser 100 caractères").
			Matches(digitRegexp, "Le mot de passe doit contenir au moins un chiffre"),
	}
}

// LoginRules là ràng buộc cho POST /auth/login
func LoginRules() []*FieldRules {
	return []*FieldRules{
		Field("email").
			Required("L'email est requis").
			Email("Email invalide"),
		Field("password").
			Required("Le mot de passe est requis"),
	}
}
