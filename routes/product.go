package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/mabolhal/sanapottery/controllers/product"
	"github.com/mabolhal/sanapottery/middleware"
	"github.com/mabolhal/sanapottery/store"
)

func SetupProductRoutes(r *gin.Engine, s store.Storage) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetAllProducts(s))
		products.GET("/:id", productcontroller.GetProductByID(s))
	}

	admin := r.Group("/api/products", middleware.ValidateAPIKey)
	{
		admin.POST("", productcontroller.CreateProduct(s))
		admin.PATCH("/:id", productcontroller.UpdateProduct(s))
		admin.DELETE("/:id", productcontroller.DeleteProduct(s))
	}
}
