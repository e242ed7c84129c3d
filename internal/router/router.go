package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateProduct(c *ginext.Context)
	CreateOccurrence(c *ginext.Context)
	UpdateOccurrenceStatus(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	ResolveSlots(c *ginext.Context)
	Reserve(c *ginext.Context)
	RenewHold(c *ginext.Context)
	ConfirmHold(c *ginext.Context)
	CancelHold(c *ginext.Context)
	CreateClosure(c *ginext.Context)
	DeleteClosure(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Products and slots
		api.POST("/products", h.CreateProduct)
		api.POST("/products/:id/occurrences", h.CreateOccurrence)
		api.GET("/products/:id/slots", h.ResolveSlots)
		api.POST("/products/:id/reserve", h.Reserve)

		// Occurrences
		api.GET("/occurrences/:id/availability", h.GetAvailability)
		api.PATCH("/occurrences/:id/status", h.UpdateOccurrenceStatus)

		// Holds
		api.POST("/holds/:token/renew", h.RenewHold)
		api.POST("/holds/:token/confirm", h.ConfirmHold)
		api.DELETE("/holds/:token", h.CancelHold)

		// Closures
		api.POST("/closures", h.CreateClosure)
		api.DELETE("/closures/:id", h.DeleteClosure)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
