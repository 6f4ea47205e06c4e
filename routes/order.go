package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/mabolhal/sanapottery/controllers/order"
	"github.com/mabolhal/sanapottery/middleware"
	"github.com/mabolhal/sanapottery/store"
)

func SetupOrderRoutes(r *gin.Engine, s store.Storage) {
	orders := r.Group("/api/orders", middleware.ValidateAPIKey)
	{
		// Fetch all orders, newest first
		orders.GET("", orderControllers.GetAllOrdersHandler(s))

		// Excel export for the fulfillment console
		orders.GET("/export", orderControllers.ExportOrdersToExcel(s))

		// Fetch a single order with its item snapshot
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(s))

		// Update fulfillment status (e.g. shipped, cancelled)
		orders.PATCH("/:orderID", orderControllers.UpdateOrderStatusHandler(s))
	}

	// websocket endpoint for real-time order updates
	r.GET("/api/orders/ws", orderControllers.OrderWebSocketHandler)
}
