package routes

import (
	"github.com/gin-gonic/gin"

	stripeControllers "github.com/mabolhal/sanapottery/controllers/stripe"
	"github.com/mabolhal/sanapottery/store"
)

// SetupRoutes is the single entry-point that wires up the catalog, cart,
// checkout and admin route groups.
func SetupRoutes(r *gin.Engine, s store.Storage, sessions stripeControllers.SessionCreator) {
	// Public catalog routes + admin catalog management
	SetupProductRoutes(r, s)

	// Guest cart routes
	SetupCartRoutes(r, s)

	// Checkout + payment webhook
	SetupStripeRoutes(r, s, sessions)

	// Admin order management
	SetupOrderRoutes(r, s)
}
