package validator

// 公開操作の入口で入力を検証する。
// 失敗は*ValidationErrorで返し、どのフィールドが悪いか分かるようにする。

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field string, message string) error {
	return &ValidationError{Field: field, Message: message}
}
