package server

import (
	"net/http"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Startはルートを登録してHTTPサーバを起動する。
func Start(
	addr string,
	productH *handler.ProductHandler,
	transactionH *handler.TransactionHandler,
	userH *handler.UserHandler,
	postH *handler.PostHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	productH.RegisterRoutes(e)
	transactionH.RegisterRoutes(e)
	userH.RegisterRoutes(e)
	postH.RegisterRoutes(e)

	return e.Start(addr)
}
