package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PostCreateRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
}

// 部分更新なのでポインタで受ける
type PostUpdateRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	AuthorName *string `json:"author_name"`
}

// /posts のAPI
type PostHandler struct {
	uc *usecase.PostUsecase
}

// DI
func NewPostHandler(uc *usecase.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

func (h *PostHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/posts", h.list)
	e.GET("/posts/:id", h.get)
	e.POST("/posts", h.create)
	e.PUT("/posts/:id", h.update)
	e.DELETE("/posts/:id", h.remove)
}

func (h *PostHandler) list(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) get(c echo.Context) error {
	p, err := h.uc.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PostHandler) create(c echo.Context) error {
	var req PostCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreatePost(c.Request().Context(), usecase.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}

func (h *PostHandler) update(c echo.Context) error {
	var req PostUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.UpdatePost(c.Request().Context(), c.Param("id"), usecase.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *PostHandler) remove(c echo.Context) error {
	if err := h.uc.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
