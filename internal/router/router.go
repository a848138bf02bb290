package router

import (
	"github.com/stpnv0/TableBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Health(c *ginext.Context)

	CreateStore(c *ginext.Context)
	GetStore(c *ginext.Context)
	ListStores(c *ginext.Context)
	ListStoreTables(c *ginext.Context)

	CreateTable(c *ginext.Context)
	GetTable(c *ginext.Context)
	UpdateTable(c *ginext.Context)
	SetTableStatus(c *ginext.Context)
	DeleteTable(c *ginext.Context)
	ListAvailableTables(c *ginext.Context)

	RequestBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	DeclineBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	AssignTable(c *ginext.Context)
	PurgeBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	ListStoreBookings(c *ginext.Context)
	ListTableBookings(c *ginext.Context)

	ListStorePending(c *ginext.Context)
	ListTablePending(c *ginext.Context)
	StorePendingCounts(c *ginext.Context)
	BulkApproveStore(c *ginext.Context)
	BulkApproveTable(c *ginext.Context)

	StreamStoreEvents(c *ginext.Context)
}

// InitRouter registers every route. bookingLimit guards the public booking
// request endpoint; mw runs for every request and must resolve the actor.
func InitRouter(mode string, h Handler, bookingLimit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", h.Health)

	api := router.Group("/api")

	// Public
	{
		api.GET("/stores", h.ListStores)
		api.GET("/stores/:id", h.GetStore)
		api.GET("/stores/:id/tables", h.ListStoreTables)
		api.GET("/stores/:id/tables/available", h.ListAvailableTables)
		api.GET("/tables/:id", h.GetTable)

		api.POST("/bookings", bookingLimit, h.RequestBooking)
	}

	authed := api.Group("", middleware.RequireAuth())

	// Stores and tables
	{
		authed.POST("/stores", h.CreateStore)
		authed.POST("/tables", h.CreateTable)
		authed.PUT("/tables/:id", h.UpdateTable)
		authed.PUT("/tables/:id/status", h.SetTableStatus)
		authed.DELETE("/tables/:id", h.DeleteTable)
	}

	// Bookings
	{
		authed.GET("/me/bookings", h.ListMyBookings)
		authed.GET("/bookings/:id", h.GetBooking)
		authed.POST("/bookings/:id/approve", h.ApproveBooking)
		authed.POST("/bookings/:id/decline", h.DeclineBooking)
		authed.POST("/bookings/:id/cancel", h.CancelBooking)
		authed.POST("/bookings/:id/assign", h.AssignTable)
		authed.DELETE("/bookings/:id", h.PurgeBooking)
		authed.GET("/stores/:id/bookings", h.ListStoreBookings)
		authed.GET("/tables/:id/bookings", h.ListTableBookings)
	}

	// Pending queue
	{
		authed.GET("/stores/:id/bookings/pending", h.ListStorePending)
		authed.GET("/stores/:id/bookings/pending/counts", h.StorePendingCounts)
		authed.GET("/tables/:id/bookings/pending", h.ListTablePending)
		authed.POST("/stores/:id/bookings/approve", h.BulkApproveStore)
		authed.POST("/tables/:id/bookings/approve", h.BulkApproveTable)
		authed.GET("/stores/:id/events", h.StreamStoreEvents)
	}

	return router
}
