package usecase

import (
	"context"

	repo "app/internal/repository"
	"app/internal/validator"
)

type TransactionUsecase struct {
	transactions repo.TransactionRepository
}

// DI
func NewTransactionUsecase(transactions repo.TransactionRepository) *TransactionUsecase {
	return &TransactionUsecase{transactions: transactions}
}

type ListTransactionsInput struct {
	Limit  int
	Offset int
}

type TransactionListOutput struct {
	Data   []repo.TransactionRecord `json:"data"`
	Total  int64                    `json:"total"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

// 台帳を新しい順に1ページ返す
func (u *TransactionUsecase) ListTransactions(ctx context.Context, in ListTransactionsInput) (TransactionListOutput, error) {
	if err := validator.ValidateListTransactions(in.Limit, in.Offset); err != nil {
		return TransactionListOutput{}, err
	}

	rows, total, err := u.transactions.List(ctx, repo.TransactionListQuery{
		Limit:  in.Limit,
		Offset: in.Offset,
	})
	if err != nil {
		return TransactionListOutput{}, err
	}

	return TransactionListOutput{
		Data:   rows,
		Total:  total,
		Limit:  in.Limit,
		Offset: in.Offset,
	}, nil
}
