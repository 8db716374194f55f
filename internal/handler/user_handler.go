package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// /users のAPI
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/users", h.create)
}

func (h *UserHandler) create(c echo.Context) error {
	var req UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	u, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, u)
}
