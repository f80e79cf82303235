package echoServer

import (
	"github.com/yunus169/book-review-project-final-project/app/echoServer/controller/author"
	"github.com/yunus169/book-review-project-final-project/app/echoServer/controller/book"
	"github.com/yunus169/book-review-project-final-project/app/echoServer/controller/review"
	"github.com/yunus169/book-review-project-final-project/app/echoServer/controller/task"

	"github.com/labstack/echo/v4"
)

type C struct {
	Book   *book.Controller
	Review *review.Controller
	Task   *task.Controller
	Author *author.Controller
}

func Register(e *echo.Echo, c C) {
	// Books — /books/top must win over /books/:id.
	e.GET("/books", c.Book.List)
	e.POST("/books", c.Book.Create)
	e.GET("/books/top", c.Book.Top)
	e.GET("/books/:id", c.Book.Detail)
	e.PUT("/books/:id", c.Book.Update)
	e.DELETE("/books/:id", c.Book.Delete)

	// Reviews
	e.POST("/reviews", c.Review.Create)
	e.GET("/reviews", c.Review.List)
	e.GET("/reviews/:book_id", c.Review.ListForBook)

	// Author lookup proxy
	e.GET("/author/:name", c.Author.Lookup)

	// Tasks — separate flat store, never joined with books.
	e.GET("/tasks", c.Task.List)
	e.POST("/tasks", c.Task.Create)
	e.GET("/tasks/categories", c.Task.Categories)
	e.GET("/tasks/categories/:name", c.Task.ListByCategory)
	e.GET("/tasks/:id", c.Task.Detail)
	e.PUT("/tasks/:id", c.Task.Update)
	e.PUT("/tasks/:id/complete", c.Task.Complete)
	e.DELETE("/tasks/:id", c.Task.Delete)
}
