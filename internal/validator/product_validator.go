package validator

import (
	"strings"

	"github.com/google/uuid"
)

// 商品作成の入力を検証
func ValidateCreateProduct(name string, initialQuantity int64) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return invalid("name", "required")
	}
	if len(name) > 100 {
		return invalid("name", "must be at most 100 characters")
	}
	if initialQuantity < 0 {
		return invalid("quantity", "must be >= 0")
	}
	return nil
}

// 商品IDの形式を検証
func ValidateProductID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return invalid("id", "must be a uuid")
	}
	return nil
}

// 在庫調整の入力を検証。changeAmount=0は調整として意味がないので拒否する。
func ValidateAdjustStock(productID string, changeAmount int64) error {
	if err := ValidateProductID(productID); err != nil {
		return err
	}
	if changeAmount == 0 {
		return invalid("change_amount", "must be a non-zero integer")
	}
	return nil
}

// 台帳一覧のページングを検証
func ValidateListTransactions(limit int, offset int) error {
	if limit < 1 || limit > 100 {
		return invalid("limit", "must be between 1 and 100")
	}
	if offset < 0 {
		return invalid("offset", "must be >= 0")
	}
	return nil
}
