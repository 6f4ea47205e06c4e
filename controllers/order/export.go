package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/mabolhal/sanapottery/store"
)

// ExportOrdersToExcel streams the full order book as an xlsx download for
// the fulfillment console.
//
// GET /api/orders/export
func ExportOrdersToExcel(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.Orders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "CustomerName", "CustomerEmail", "CustomerPhone",
			"ShippingAddress", "ShippingCity", "ShippingPostalCode", "ShippingCountry",
			"Total", "Status", "ItemCount", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerEmail)
			row.AddCell().SetValue(o.CustomerPhone)
			row.AddCell().SetValue(o.ShippingAddress)
			row.AddCell().SetValue(o.ShippingCity)
			row.AddCell().SetValue(o.ShippingPostalCode)
			row.AddCell().SetValue(o.ShippingCountry)
			row.AddCell().SetValue(o.Total.StringFixed(2))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(strconv.Itoa(len(o.Items)))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
