package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

type PostUsecase struct {
	posts repo.PostRepository
	idGen IDGenerator
	clock Clock
}

// DI
func NewPostUsecase(posts repo.PostRepository, idGen IDGenerator, clock Clock) *PostUsecase {
	return &PostUsecase{posts: posts, idGen: idGen, clock: clock}
}

type CreatePostInput struct {
	Title      string
	Content    string
	AuthorName string
}

// 部分更新なのでポインタで「渡されたかどうか」を区別する
type UpdatePostInput struct {
	Title      *string
	Content    *string
	AuthorName *string
}

func (u *PostUsecase) ListPosts(ctx context.Context) ([]model.Post, error) {
	return u.posts.List(ctx)
}

func (u *PostUsecase) GetPost(ctx context.Context, id string) (model.Post, error) {
	if err := validator.ValidatePostID(id); err != nil {
		return model.Post{}, err
	}
	return u.posts.FindByID(ctx, id)
}

func (u *PostUsecase) CreatePost(ctx context.Context, in CreatePostInput) (model.Post, error) {
	if err := validator.ValidateCreatePost(in.Title, in.Content, in.AuthorName); err != nil {
		return model.Post{}, err
	}

	now := u.clock.Now()
	return u.posts.Create(ctx, model.Post{
		ID:         u.idGen.NewID(),
		Title:      in.Title,
		Content:    in.Content,
		AuthorName: in.AuthorName,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// 渡されたフィールドだけ上書きする
func (u *PostUsecase) UpdatePost(ctx context.Context, id string, in UpdatePostInput) (model.Post, error) {
	if err := validator.ValidatePostID(id); err != nil {
		return model.Post{}, err
	}
	if err := validator.ValidateUpdatePost(in.Title, in.Content, in.AuthorName); err != nil {
		return model.Post{}, err
	}

	p, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return model.Post{}, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.AuthorName != nil {
		p.AuthorName = *in.AuthorName
	}

	if err := u.posts.Update(ctx, p); err != nil {
		return model.Post{}, err
	}
	return p, nil
}

func (u *PostUsecase) DeletePost(ctx context.Context, id string) error {
	if err := validator.ValidatePostID(id); err != nil {
		return err
	}
	return u.posts.Delete(ctx, id)
}
