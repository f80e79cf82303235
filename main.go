// Package main book review API.
//
// @title           Book Review Platform API
// @version         1.0
// @description     Book catalog with reviews, top-5 ranking, an OpenLibrary author proxy, and a separate task tracker.
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/yunus169/book-review-project-final-project/app/echoServer"
	authorctrl "github.com/yunus169/book-review-project-final-project/app/echoServer/controller/author"
	bookctrl "github.com/yunus169/book-review-project-final-project/app/echoServer/controller/book"
	reviewctrl "github.com/yunus169/book-review-project-final-project/app/echoServer/controller/review"
	taskctrl "github.com/yunus169/book-review-project-final-project/app/echoServer/controller/task"
	"github.com/yunus169/book-review-project-final-project/app/echoServer/validation"
	"github.com/yunus169/book-review-project-final-project/config"
	bookrepo "github.com/yunus169/book-review-project-final-project/repository/book"
	openlibraryrepo "github.com/yunus169/book-review-project-final-project/repository/openlibrary"
	reviewrepo "github.com/yunus169/book-review-project-final-project/repository/review"
	taskrepo "github.com/yunus169/book-review-project-final-project/repository/task"
	authorsvc "github.com/yunus169/book-review-project-final-project/service/author"
	booksvc "github.com/yunus169/book-review-project-final-project/service/book"
	reviewsvc "github.com/yunus169/book-review-project-final-project/service/review"
	tasksvc "github.com/yunus169/book-review-project-final-project/service/task"
	"github.com/yunus169/book-review-project-final-project/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *pgxpool.Pool
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	br := bookrepo.New(db)
	rr := reviewrepo.New(db)
	tr := taskrepo.New(cfg.TasksFile)
	or := openlibraryrepo.NewHTTP(cfg.OpenLibraryURL)

	// services
	bs := booksvc.New(br)
	rs := reviewsvc.New(rr)
	ts := tasksvc.New(tr)
	as := authorsvc.New(or)

	// controllers
	v := validator.New()
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	reviewC := &reviewctrl.Controller{Svc: rs, V: v, Log: log}
	taskC := &taskctrl.Controller{Svc: ts, V: v, Log: log}
	authorC := &authorctrl.Controller{Svc: as, Log: log}

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
		Book:   bookC,
		Review: reviewC,
		Task:   taskC,
		Author: authorC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
