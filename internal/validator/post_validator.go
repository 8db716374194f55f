package validator

import (
	"strings"

	"github.com/google/uuid"
)

// 投稿作成の入力を検証
func ValidateCreatePost(title string, content string, authorName string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateContent(content); err != nil {
		return err
	}
	return validateAuthorName(authorName)
}

// 部分更新なので渡されたフィールドだけ検証する
func ValidateUpdatePost(title *string, content *string, authorName *string) error {
	if title != nil {
		if err := validateTitle(*title); err != nil {
			return err
		}
	}
	if content != nil {
		if err := validateContent(*content); err != nil {
			return err
		}
	}
	if authorName != nil {
		if err := validateAuthorName(*authorName); err != nil {
			return err
		}
	}
	return nil
}

func ValidatePostID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return invalid("id", "must be a uuid")
	}
	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) < 5 {
		return invalid("title", "must be at least 5 characters")
	}
	if len(title) > 100 {
		return invalid("title", "must be at most 100 characters")
	}
	return nil
}

func validateContent(content string) error {
	if len(strings.TrimSpace(content)) < 5 {
		return invalid("content", "must be at least 5 characters")
	}
	return nil
}

func validateAuthorName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return invalid("author_name", "must be at least 3 characters")
	}
	if len(name) > 50 {
		return invalid("author_name", "must be at most 50 characters")
	}
	return nil
}
