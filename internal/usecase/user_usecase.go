package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

type UserUsecase struct {
	users repo.UserRepository
	idGen IDGenerator
	clock Clock
}

// DI
func NewUserUsecase(users repo.UserRepository, idGen IDGenerator, clock Clock) *UserUsecase {
	return &UserUsecase{users: users, idGen: idGen, clock: clock}
}

type CreateUserInput struct {
	Name  string
	Email string
}

// CreateUserはユーザーを登録する。emailは全ユーザーでユニーク。
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if err := validator.ValidateCreateUser(name, email); err != nil {
		return model.User{}, err
	}

	// email重複チェック
	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if existing != nil {
		return model.User{}, ErrEmailAlreadyExists
	}

	created, err := u.users.Create(ctx, model.User{
		ID:        u.idGen.NewID(),
		Name:      name,
		Email:     email,
		CreatedAt: u.clock.Now(),
	})
	if errors.Is(err, repo.ErrConflict) {
		return model.User{}, ErrEmailAlreadyExists
	}
	if err != nil {
		return model.User{}, err
	}
	return created, nil
}
