package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

// DI
func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

// 台帳に1行追加。既存行は触らない。
func (r *TransactionGormRepository) Create(ctx context.Context, t model.Transaction) error {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return err
	}
	return nil
}

// 新しい順に1ページ分。同時刻はidで順序を固定する。
func (r *TransactionGormRepository) List(ctx context.Context, q repo.TransactionListQuery) ([]repo.TransactionRecord, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []repo.TransactionRecord
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("transactions.id, transactions.product_id, products.name AS product_name, transactions.type, transactions.quantity_changed, transactions.timestamp").
		Joins("JOIN products ON products.id = transactions.product_id").
		Order("transactions.timestamp DESC").
		Order("transactions.id DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	if rows == nil {
		rows = []repo.TransactionRecord{}
	}
	return rows, total, nil
}
