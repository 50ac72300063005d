package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateFacility(c *ginext.Context)
	GetFacility(c *ginext.Context)
	ListFacilities(c *ginext.Context)
	UpdateFacility(c *ginext.Context)
	AddHoliday(c *ginext.Context)
	RemoveHoliday(c *ginext.Context)
	ListHolidays(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	CreateSeries(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ApproveReservation(c *ginext.Context)
	RejectReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	ExtendReservation(c *ginext.Context)
	CopyReservation(c *ginext.Context)
	ListFacilityReservations(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Facilities
		api.POST("/facilities", h.CreateFacility)
		api.GET("/facilities", h.ListFacilities)
		api.GET("/facilities/:id", h.GetFacility)
		api.PUT("/facilities/:id", h.UpdateFacility)

		// Holidays
		api.POST("/facilities/:id/holidays", h.AddHoliday)
		api.GET("/facilities/:id/holidays", h.ListHolidays)
		api.DELETE("/holidays/:id", h.RemoveHoliday)

		// Reservations
		api.POST("/facilities/:id/reservations", h.CreateReservation)
		api.POST("/facilities/:id/reservations/series", h.CreateSeries)
		api.GET("/facilities/:id/reservations", h.ListFacilityReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/reservations/:id/reject", h.RejectReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/extend", h.ExtendReservation)
		api.POST("/reservations/:id/copy", h.CopyReservation)

		// Users
		api.GET("/users/:id/reservations", h.GetUserReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
