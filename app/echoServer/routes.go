package echoServer

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/francistate/alx-travel-app-0x00/app/echoServer/controller/auth"
	"github.com/francistate/alx-travel-app-0x00/app/echoServer/controller/booking"
	"github.com/francistate/alx-travel-app-0x00/app/echoServer/controller/listing"
	"github.com/francistate/alx-travel-app-0x00/app/echoServer/controller/review"
	"github.com/francistate/alx-travel-app-0x00/app/echoServer/jwtx"
	jwtutil "github.com/francistate/alx-travel-app-0x00/util/jwt"
)

type C struct {
	Auth      *auth.Controller
	Listing   *listing.Controller
	Booking   *booking.Controller
	Review    *review.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)
	pub.GET("/listings", c.Listing.List)
	pub.GET("/listings/:id", c.Listing.Detail)
	pub.GET("/listings/:id/reviews", c.Review.ListByListing)

	// Authenticated
	authed := e.Group("/v1")
	secret := c.JWTSecret
	authed.Use(echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(ctx echo.Context, token string) (interface{}, error) {
			return jwtutil.ParseAuth(token, secret)
		},
	}))
	// user_id extraction for controllers
	authed.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := jwtx.UserIDFromContext(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", uid)
			return next(ctx)
		}
	})

	// Users
	authed.GET("/users/me", c.Auth.Me)

	// Listings (host actions)
	authed.POST("/listings", c.Listing.Create)
	authed.PUT("/listings/:id", c.Listing.Update)
	authed.DELETE("/listings/:id", c.Listing.Delete)

	// Bookings
	authed.POST("/bookings", c.Booking.Create)
	authed.GET("/bookings/my", c.Booking.MyBookings)
	authed.PUT("/bookings/:id/dates", c.Booking.UpdateStay)
	authed.PATCH("/bookings/:id/status", c.Booking.UpdateStatus)

	// Reviews
	authed.POST("/listings/:id/reviews", c.Review.Create)
}
