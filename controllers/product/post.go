package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/mabolhal/sanapottery/models"
	"github.com/mabolhal/sanapottery/store"
)

type ProductInput struct {
	NameEn        string   `json:"nameEn" binding:"required"`
	NameFr        string   `json:"nameFr" binding:"required"`
	DescriptionEn string   `json:"descriptionEn"`
	DescriptionFr string   `json:"descriptionFr"`
	Price         string   `json:"price" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	ImageURL      string   `json:"imageUrl" binding:"required"`
	ImageURLs     []string `json:"imageUrls"`
	InStock       *bool    `json:"inStock"`
	Featured      *bool    `json:"featured"`
	Dimensions    string   `json:"dimensions"`
	Materials     string   `json:"materials"`
	CareText      string   `json:"careInstructions"`
}

// CreateProduct creates a new catalog entry.
func CreateProduct(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		price, err := decimal.NewFromString(input.Price)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		inStock := true
		if input.InStock != nil {
			inStock = *input.InStock
		}
		featured := false
		if input.Featured != nil {
			featured = *input.Featured
		}

		product := models.Product{
			NameEn:        input.NameEn,
			NameFr:        input.NameFr,
			DescriptionEn: input.DescriptionEn,
			DescriptionFr: input.DescriptionFr,
			Price:         price,
			Category:      input.Category,
			ImageURL:      input.ImageURL,
			ImageURLs:     pq.StringArray(input.ImageURLs),
			InStock:       inStock,
			Featured:      featured,
			Dimensions:    input.Dimensions,
			Materials:     input.Materials,
			CareText:      input.CareText,
		}
		if product.ImageURLs == nil {
			product.ImageURLs = pq.StringArray{}
		}

		if err := s.CreateProduct(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
