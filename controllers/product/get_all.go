package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mabolhal/sanapottery/store"
)

// GetAllProducts lists the catalog. Optional query params:
//
//	?category=bowls    only that category
//	?featured=true     only featured pieces
func GetAllProducts(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.ProductFilter{
			Category: c.Query("category"),
			Featured: c.Query("featured") == "true",
		}

		products, err := s.Products(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
