package stripeControllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	orderControllers "github.com/mabolhal/sanapottery/controllers/order"
	"github.com/mabolhal/sanapottery/store"
)

const maxWebhookBody = 65536

// WebhookHandler processes the provider's asynchronous payment
// confirmation. Only a bad signature is rejected; every other path
// acknowledges with {received: true} so the provider stops redelivering.
// Order creation is idempotent on the checkout session id, so a
// redelivered completion event cannot insert a second order.
//
// POST /webhook
func WebhookHandler(s store.Storage) gin.HandlerFunc {
	webhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")

	return func(c *gin.Context) {
		payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
			return
		}

		event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), webhookSecret)
		if err != nil {
			log.Printf("❌ Webhook signature verification failed: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}

		if event.Type != stripe.EventTypeCheckoutSessionCompleted {
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("❌ Failed to decode checkout session from event %s: %v", event.ID, err)
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		// Sessions created outside the checkout flow carry no order
		// intent; acknowledge and move on rather than fail the
		// provider's retry contract.
		raw, ok := sess.Metadata["order"]
		if !ok || raw == "" {
			log.Printf("⚠️ Checkout session %s completed without order metadata", sess.ID)
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		intent, err := DecodeOrderIntent(raw)
		if err != nil {
			log.Printf("⚠️ Malformed order metadata on session %s: %v", sess.ID, err)
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		order, err := intent.Order(sess.ID)
		if err != nil {
			log.Printf("⚠️ Unusable order intent on session %s: %v", sess.ID, err)
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		stored, err := s.CreateOrder(order)
		if err != nil {
			log.Printf("❌ Failed to persist order for session %s: %v", sess.ID, err)
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		if stored.ID == order.ID {
			log.Printf("✅ Order %s placed for session %s (%d items, total %s)",
				stored.ID, sess.ID, len(stored.Items), stored.Total)
			// Stock is intentionally not decremented here; the catalog
			// only tracks an in-stock flag. Purchased quantities are
			// logged so fulfillment can reconcile.
			for _, it := range stored.Items {
				log.Printf("   · %s x%d @ %s", it.ProductID, it.Quantity, it.UnitPrice)
			}
			orderControllers.BroadcastNewOrder(*stored)
		} else {
			log.Printf("ℹ️ Duplicate confirmation for session %s, order %s already stored", sess.ID, stored.ID)
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
