package repository

import (
	"app/internal/domain/model"
	"context"
)

type PostRepository interface {
	List(ctx context.Context) ([]model.Post, error)
	FindByID(ctx context.Context, id string) (model.Post, error)
	Create(ctx context.Context, p model.Post) (model.Post, error)
	Update(ctx context.Context, p model.Post) error
	Delete(ctx context.Context, id string) error
}
