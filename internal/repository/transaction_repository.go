package repository

import (
	"app/internal/domain/model"
	"context"
	"time"
)

// 一覧の1行。表示用に商品名をJOINで持つ。
type TransactionRecord struct {
	ID              string                `json:"id"`
	ProductID       string                `json:"product_id"`
	ProductName     string                `json:"product_name"`
	Type            model.TransactionType `json:"type"`
	QuantityChanged int64                 `json:"quantity_changed"`
	Timestamp       time.Time             `json:"timestamp"`
}

type TransactionListQuery struct {
	Limit  int
	Offset int
}

// 台帳の永続化。更新・削除は約束しない（append-only）。
type TransactionRepository interface {
	Create(ctx context.Context, t model.Transaction) error

	// timestamp降順（同時刻はid降順）で1ページ分と総件数を返す
	List(ctx context.Context, q TransactionListQuery) ([]TransactionRecord, int64, error)
}
