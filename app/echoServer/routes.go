package echoServer

import (
	"catalog/app/echoServer/controller/author"
	"catalog/app/echoServer/controller/copy"

	"github.com/labstack/echo/v4"
)

type C struct {
	Copy   *copy.Controller
	Author *author.Controller
}

func Register(e *echo.Echo, c C) {
	cat := e.Group("/catalog")

	// Copies
	cat.GET("/copies", c.Copy.List)
	cat.GET("/copy/create", c.Copy.NewForm)
	cat.POST("/copy/create", c.Copy.Create)
	cat.GET("/copy/:id", c.Copy.Detail)
	cat.GET("/copy/:id/update", c.Copy.EditForm)
	cat.POST("/copy/:id/update", c.Copy.Update)
	cat.GET("/copy/:id/delete", c.Copy.DeleteForm)
	cat.POST("/copy/:id/delete", c.Copy.Delete)

	// Authors (read-only)
	cat.GET("/authors", c.Author.List)
	cat.GET("/author/:id", c.Author.Detail)
}
