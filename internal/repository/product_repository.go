package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	// UNIQUE制約違反
	ErrConflict = errors.New("conflict")

	// 行ロックが時間内に取れなかった（リトライ可能）
	ErrLockTimeout = errors.New("lock timeout")
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (model.Product, error)

	// FOR UPDATEで行ロックして取得。TransactionManagerのTx内でのみ使う。
	FindByIDForUpdate(ctx context.Context, id string) (model.Product, error)

	FindByName(ctx context.Context, name string) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
}
