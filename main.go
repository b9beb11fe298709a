// Package main travel listing API.
//
// @title           Travel Listings API
// @version         1.0
// @description     travel listing/booking service (listings, bookings, reviews, users).
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

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/francistate/alx-travel-app-0x00/app/echoServer"
	authctrl "github.com/francistate/alx-travel-app-0x00/app/echoServer/controller/auth"
	bookingctrl "github.com/francistate/alx-travel-app-0x00/app/echoServer/controller/booking"
	listingctrl "github.com/francistate/alx-travel-app-0x00/app/echoServer/controller/listing"
	reviewctrl "github.com/francistate/alx-travel-app-0x00/app/echoServer/controller/review"
	"github.com/francistate/alx-travel-app-0x00/app/echoServer/validation"
	"github.com/francistate/alx-travel-app-0x00/config"
	bookingrepo "github.com/francistate/alx-travel-app-0x00/repository/booking"
	listingrepo "github.com/francistate/alx-travel-app-0x00/repository/listing"
	reviewrepo "github.com/francistate/alx-travel-app-0x00/repository/review"
	userrepo "github.com/francistate/alx-travel-app-0x00/repository/user"
	authsvc "github.com/francistate/alx-travel-app-0x00/service/auth"
	bookingsvc "github.com/francistate/alx-travel-app-0x00/service/booking"
	listingsvc "github.com/francistate/alx-travel-app-0x00/service/listing"
	reviewsvc "github.com/francistate/alx-travel-app-0x00/service/review"
	"github.com/francistate/alx-travel-app-0x00/util/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Error("schema bootstrap failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	lr := listingrepo.New(db)
	br := bookingrepo.New(db)
	rr := reviewrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	ls := listingsvc.New(lr, rr)
	bs := bookingsvc.New(db.Pool, lr, br)
	rs := reviewsvc.New(rr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	listingC := &listingctrl.Controller{Svc: ls, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}
	reviewC := &reviewctrl.Controller{Svc: rs, V: v, Log: log}

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
		Auth:      authC,
		Listing:   listingC,
		Booking:   bookingC,
		Review:    reviewC,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
