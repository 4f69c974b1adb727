package echoServer

import (
	"bookrental/app/echoServer/controller/auth"
	"bookrental/app/echoServer/controller/book"
	"bookrental/app/echoServer/controller/rental"
	"bookrental/app/echoServer/controller/user"

	"github.com/labstack/echo/v4"
)

type C struct {
	Auth   *auth.Controller
	Book   *book.Controller
	Rental *rental.Controller
	User   *user.Controller

	Users     Users
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)
	pub.GET("/books", c.Book.List)
	pub.GET("/books/:bookId", c.Book.Detail)

	// Authenticated
	authed := e.Group("/v1", JWT(c.JWTSecret), ResolveUser(c.Users))
	authed.POST("/books/:bookId/rent", c.Rental.Rent)
	authed.POST("/rentals", c.Rental.Create)
	authed.POST("/rentals/:rentalId/return", c.Rental.Return)
	authed.GET("/users/:userId/books", c.User.Books)
}
