// Package main catalog API.
//
// @title           Local Library Catalog API
// @version         1.0
// @description     catalog service (authors, books, copies).
// @BasePath        /
// @schemes         http
package main

import (
	"catalog/app/echoServer"
	authorctrl "catalog/app/echoServer/controller/author"
	copyctrl "catalog/app/echoServer/controller/copy"
	"catalog/app/echoServer/validation"
	"catalog/config"
	authorrepo "catalog/repository/author"
	copyrepo "catalog/repository/copy"
	authorsvc "catalog/service/author"
	copysvc "catalog/service/copy"
	"catalog/util/database"
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	cr := copyrepo.New(db)
	ar := authorrepo.New(db)

	// services
	cs := copysvc.New(cr, log)
	as := authorsvc.New(ar)

	// controllers
	v := validator.New()
	copyC := &copyctrl.Controller{Svc: cs, V: v, Log: log}
	authorC := &authorctrl.Controller{Svc: as, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Copy:   copyC,
		Author: authorC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
