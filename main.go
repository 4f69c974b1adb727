// Package main library rental API.
//
// @title           Library Rental API
// @version         1.0
// @description     Book catalog search, user auth, and rental operations.
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
	"net/http"
	"os"
	"time"

	"bookrental/app/echoServer"
	authctrl "bookrental/app/echoServer/controller/auth"
	bookctrl "bookrental/app/echoServer/controller/book"
	rentalctrl "bookrental/app/echoServer/controller/rental"
	userctrl "bookrental/app/echoServer/controller/user"
	"bookrental/app/echoServer/validation"
	"bookrental/config"
	"bookrental/data"
	bookrepo "bookrental/repository/book"
	rentalrepo "bookrental/repository/rental"
	userrepo "bookrental/repository/user"
	authsvc "bookrental/service/auth"
	booksvc "bookrental/service/book"
	rentalsvc "bookrental/service/rental"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// stores, seeded with sample data for the lifetime of the process
	books := bookrepo.New()
	users := userrepo.New()
	rentals := rentalrepo.New()

	loanPeriod := time.Duration(cfg.LoanPeriodDays) * 24 * time.Hour
	if err := data.Seed(ctx, books, users, rentals, loanPeriod); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}

	// services
	as := authsvc.New(users, cfg.JWTSecret)
	bs := booksvc.New(books)
	rs := rentalsvc.New(books, rentals, rentalsvc.Config{
		LoanPeriod:    loanPeriod,
		LateFeePerDay: cfg.LateFeePerDay,
	})

	// controllers
	authC := &authctrl.Controller{Svc: as, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Log: log}
	userC := &userctrl.Controller{Svc: rs, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Book:   bookC,
		Rental: rentalC,
		User:   userC,

		Users:     users,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
