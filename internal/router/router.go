package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	CreateRoomType(c *ginext.Context)
	GetRoomType(c *ginext.Context)
	InsertOverride(c *ginext.Context)
	GetActiveRange(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	UpdateStay(c *ginext.Context)
	UpdateStatus(c *ginext.Context)
	UpdatePaymentStatus(c *ginext.Context)
	AssignBeds(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Onboarding
		api.POST("/register", h.Register)

		// Room types
		api.POST("/properties/:id/room-types", h.CreateRoomType)
		api.GET("/room-types/:id", h.GetRoomType)
		api.POST("/room-types/:id/overrides", h.InsertOverride)
		api.GET("/room-types/:id/overrides/active", h.GetActiveRange)
		api.GET("/room-types/:id/availability", h.CheckAvailability)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PATCH("/reservations/:id/stay", h.UpdateStay)
		api.PATCH("/reservations/:id/status", h.UpdateStatus)
		api.PATCH("/reservations/:id/payment-status", h.UpdatePaymentStatus)

		// Beds
		api.POST("/properties/:id/bed-assignments/:date", h.AssignBeds)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
