package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/mabolhal/sanapottery/controllers/cart"
	"github.com/mabolhal/sanapottery/store"
)

func SetupCartRoutes(r *gin.Engine, s store.Storage) {
	cart := r.Group("/api/cart")
	{
		cart.GET("/:sessionId", cartControllers.GetCart(s))
		cart.POST("", cartControllers.AddToCart(s))
		cart.PATCH("/:id", cartControllers.UpdateCartItem(s))
		cart.DELETE("/:id", cartControllers.RemoveCartItem(s))
		cart.DELETE("/session/:sessionId", cartControllers.ClearCart(s))
	}
}
