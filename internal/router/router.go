package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListRetreats(c *ginext.Context)
	GetRetreat(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	LookupBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	AddCartAttendee(c *ginext.Context)
	RemoveCartAttendee(c *ginext.Context)
	GetCart(c *ginext.Context)
	Checkout(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Retreats
		api.GET("/retreats", h.ListRetreats)
		api.GET("/retreats/:id", h.GetRetreat)

		// Bookings
		api.POST("/retreats/bookings", h.CreateBooking)
		api.POST("/retreats/bookings/lookup", h.LookupBooking)
		api.PATCH("/retreats/bookings/:id", h.UpdateBooking)

		// Cart
		api.GET("/cart", h.GetCart)
		api.POST("/cart/:retreatID/attendees", h.AddCartAttendee)
		api.DELETE("/cart/:retreatID/attendees/:gender", h.RemoveCartAttendee)
		api.POST("/cart/checkout", h.Checkout)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
