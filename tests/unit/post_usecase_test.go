package unit

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type PostRepoMock struct{ mock.Mock }

func (m *PostRepoMock) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]model.Post)
	return posts, args.Error(1)
}

func (m *PostRepoMock) FindByID(ctx context.Context, id string) (model.Post, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Post)
	return p, args.Error(1)
}

func (m *PostRepoMock) Create(ctx context.Context, p model.Post) (model.Post, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Post)
	return created, args.Error(1)
}

func (m *PostRepoMock) Update(ctx context.Context, p model.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PostRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const postID = "7c25b1ba-2b44-4e7c-bc62-8f5d1a3f9e10"

func newPostUsecase(pRepo *PostRepoMock) *usecase.PostUsecase {
	return usecase.NewPostUsecase(pRepo, &seqIDGen{}, &fixedClock{t: testNow})
}

func TestPostUsecase_CreatePost_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(PostRepoMock)
	uc := newPostUsecase(pRepo)

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Post) bool {
		return p.Title == "First post" && p.AuthorName == "Alice" && p.ID != ""
	})).Return(model.Post{ID: postID, Title: "First post"}, nil)

	p, err := uc.CreatePost(ctx, usecase.CreatePostInput{
		Title:      "First post",
		Content:    "Hello world",
		AuthorName: "Alice",
	})
	assert.NoError(t, err)
	assert.Equal(t, "First post", p.Title)
}

func TestPostUsecase_CreatePost_TitleTooShort(t *testing.T) {
	uc := newPostUsecase(new(PostRepoMock))

	_, err := uc.CreatePost(context.Background(), usecase.CreatePostInput{
		Title:      "abc",
		Content:    "Hello world",
		AuthorName: "Alice",
	})
	assertValidationError(t, err, "title")
}

func TestPostUsecase_GetPost_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(PostRepoMock)
	uc := newPostUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, postID).Return(model.Post{}, repo.ErrNotFound)

	_, err := uc.GetPost(ctx, postID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// 渡したフィールドだけ変わる
func TestPostUsecase_UpdatePost_Partial(t *testing.T) {
	ctx := context.Background()

	pRepo := new(PostRepoMock)
	uc := newPostUsecase(pRepo)

	existing := model.Post{ID: postID, Title: "Old title", Content: "Old content", AuthorName: "Alice"}
	pRepo.On("FindByID", mock.Anything, postID).Return(existing, nil)

	newTitle := "New title"
	pRepo.On("Update", mock.Anything, mock.MatchedBy(func(p model.Post) bool {
		return p.Title == "New title" && p.Content == "Old content" && p.AuthorName == "Alice"
	})).Return(nil)

	p, err := uc.UpdatePost(ctx, postID, usecase.UpdatePostInput{Title: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, "New title", p.Title)
	assert.Equal(t, "Old content", p.Content)

	pRepo.AssertExpectations(t)
}

func TestPostUsecase_DeletePost_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(PostRepoMock)
	uc := newPostUsecase(pRepo)

	pRepo.On("Delete", mock.Anything, postID).Return(repo.ErrNotFound)

	err := uc.DeletePost(ctx, postID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
