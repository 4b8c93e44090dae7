package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CheckAvailability(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetUserBookings(c *ginext.Context)

	CreateSpace(c *ginext.Context)
	ListSpaces(c *ginext.Context)
	GetSpace(c *ginext.Context)
	UpdateSpace(c *ginext.Context)
	DeleteSpace(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Availability
		api.GET("/availability", h.CheckAvailability)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Spaces
		api.POST("/spaces", h.CreateSpace)
		api.GET("/spaces", h.ListSpaces)
		api.GET("/spaces/:id", h.GetSpace)
		api.PUT("/spaces/:id", h.UpdateSpace)
		api.DELETE("/spaces/:id", h.DeleteSpace)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
