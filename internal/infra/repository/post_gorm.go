package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PostGormRepository struct {
	db *gorm.DB
}

// DI
func NewPostGormRepository(db *gorm.DB) *PostGormRepository {
	return &PostGormRepository{db: db}
}

func (r *PostGormRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostGormRepository) FindByID(ctx context.Context, id string) (model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Post{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Post{}, err
	}
	return p, nil
}

func (r *PostGormRepository) Create(ctx context.Context, p model.Post) (model.Post, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Post{}, err
	}
	return p, nil
}

func (r *PostGormRepository) Update(ctx context.Context, p model.Post) error {
	res := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"title":       p.Title,
			"content":     p.Content,
			"author_name": p.AuthorName,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PostGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
