package handler

import (
	"errors"
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecaseのエラーをHTTPステータスへ写す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var ve *validator.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Error()})
	}

	var ise *usecase.InsufficientStockError
	if errors.As(err, &ise) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ise.Error()})
	}

	switch {
	case errors.Is(err, repo.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, usecase.ErrProductNameTaken),
		errors.Is(err, usecase.ErrEmailAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repo.ErrLockTimeout):
		// 混み合っているだけなのでリトライしてもらう
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "temporarily unavailable, retry"})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

type ProductCreateRequest struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type AdjustStockRequest struct {
	ChangeAmount int64 `json:"change_amount"`
}

// /products のAPI
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/products", h.create)
	e.GET("/products/:id", h.get)
	e.PUT("/products/:id/adjust", h.adjust)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:            req.Name,
		InitialQuantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) get(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) adjust(c echo.Context) error {
	var req AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.AdjustStock(c.Request().Context(), c.Param("id"), req.ChangeAmount)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}
