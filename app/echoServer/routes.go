package echoServer

import (
	"net/http"

	"github.com/KIKE335/tool-management-backend/app/echoServer/controller/auth"
	"github.com/KIKE335/tool-management-backend/app/echoServer/controller/tool"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Tool *tool.Controller
	Auth *auth.Controller

	// JWTSecret guards the mutating tool routes when Auth is set.
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	e.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"message": "工具・治具管理システム API"})
	})

	e.GET("/tools", c.Tool.List)

	mut := e.Group("")
	if c.Auth != nil {
		e.POST("/v1/auth/login", c.Auth.Login)

		mut.Use(echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(c.JWTSecret),

			NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
			TokenLookup:   "header:Authorization",
		}))
	}
	mut.POST("/tools", c.Tool.Create)
	mut.PUT("/tools/:id/status", c.Tool.UpdateStatus)
}
