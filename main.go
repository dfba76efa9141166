// Package main tool/jig inventory API.
//
// @title           Tool Management API
// @version         1.0
// @description     Tool and jig inventory backed by a Google Sheets master sheet, with QR codes per item.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KIKE335/tool-management-backend/app/echoServer"
	authctrl "github.com/KIKE335/tool-management-backend/app/echoServer/controller/auth"
	toolctrl "github.com/KIKE335/tool-management-backend/app/echoServer/controller/tool"
	"github.com/KIKE335/tool-management-backend/app/echoServer/validation"
	"github.com/KIKE335/tool-management-backend/config"
	sheetsrepo "github.com/KIKE335/tool-management-backend/repository/sheets"
	authsvc "github.com/KIKE335/tool-management-backend/service/auth"
	toolsvc "github.com/KIKE335/tool-management-backend/service/tool"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// row store
	creds, err := cfg.Credentials()
	if err != nil {
		log.Error("reading google credentials", "err", err)
		os.Exit(1)
	}
	sr, err := sheetsrepo.NewGoogle(ctx, creds, cfg.SpreadsheetID, cfg.SheetName)
	if err != nil {
		log.Error("sheets connect failed", "err", err)
		os.Exit(1)
	}

	// Fail fast if the sheet header drifted from the field dictionary;
	// serving against a mismatched schema writes to the wrong columns.
	header, err := sr.Header(ctx)
	if err != nil {
		log.Error("reading sheet header", "err", err)
		os.Exit(1)
	}
	if err := toolsvc.ValidateHeader(header); err != nil {
		log.Error("sheet header mismatch", "err", err)
		os.Exit(1)
	}

	// services
	tls := toolsvc.New(sr, log)

	// controllers
	v := validator.New()
	toolC := &toolctrl.Controller{Svc: tls, V: v, Log: log}

	var authC *authctrl.Controller
	if cfg.AuthEnabled() {
		as := authsvc.New(cfg.AdminPasswordHash, cfg.JWTSecret)
		authC = &authctrl.Controller{Svc: as, V: v, Log: log}
	}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e, cfg.AllowedOrigins)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Tool: toolC,
		Auth: authC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
