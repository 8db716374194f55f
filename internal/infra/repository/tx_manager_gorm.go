package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products     repo.ProductRepository
	transactions repo.TransactionRepository
}

func (r *txReposGorm) Products() repo.ProductRepository         { return r.products }
func (r *txReposGorm) Transactions() repo.TransactionRepository { return r.transactions }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがエラーを返すか途中でキャンセルされたら全体をロールバックする。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:     NewProductGormRepository(tx),
			transactions: NewTransactionGormRepository(tx),
		}
		return fn(r)
	})
}
