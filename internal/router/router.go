package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	ListMunicipalities(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Citizen
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:token", h.GetBooking)
		api.DELETE("/bookings/:token", h.CancelBooking)

		// Staff
		api.GET("/staff/bookings", h.ListBookings)
		api.PATCH("/staff/bookings/:token/update", h.UpdateBookingStatus)

		// Reference data
		api.GET("/municipalities", h.ListMunicipalities)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
