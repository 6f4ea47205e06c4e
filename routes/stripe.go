package routes

import (
	"github.com/gin-gonic/gin"

	stripeControllers "github.com/mabolhal/sanapottery/controllers/stripe"
	"github.com/mabolhal/sanapottery/store"
)

func SetupStripeRoutes(r *gin.Engine, s store.Storage, sessions stripeControllers.SessionCreator) {
	// Checkout session creation: validates the cart payload and returns
	// the hosted payment page URL. Creates no order.
	r.POST("/api/create-checkout-session", stripeControllers.CreateCheckoutSession(sessions))

	// Provider callback: signature-verified, idempotent order commit.
	r.POST("/webhook", stripeControllers.WebhookHandler(s))
}
