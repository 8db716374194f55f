package validator

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ユーザー作成の入力を検証
func ValidateCreateUser(name string, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return invalid("name", "required")
	}
	if len(name) > 100 {
		return invalid("name", "must be at most 100 characters")
	}
	if email == "" {
		return invalid("email", "required")
	}

	// 簡易メール形式チェック
	if !emailRe.MatchString(email) {
		return invalid("email", "invalid format")
	}
	return nil
}
