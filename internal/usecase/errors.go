package usecase

import (
	"errors"
	"fmt"
)

var (
	// 競合
	ErrProductNameTaken   = errors.New("product name already exists")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 在庫不足。診断のため現在値と要求値を持たせる。
type InsufficientStockError struct {
	Current   int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: current=%d requested=%d", e.Current, e.Requested)
}
