package repository

import (
	"app/internal/domain/model"
	"context"
)

type UserRepository interface {
	// 見つからないときは (nil, nil)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	Create(ctx context.Context, u model.User) (model.User, error)
}
