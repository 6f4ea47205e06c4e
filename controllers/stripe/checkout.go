package stripeControllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

const currency = "cad"

// SessionCreator creates hosted checkout sessions. The live implementation
// calls Stripe; tests substitute their own.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type liveSessions struct{}

func (liveSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// LiveSessions calls the Stripe API using the global stripe.Key.
var LiveSessions SessionCreator = liveSessions{}

// getStripeConfig reads the checkout environment.
func getStripeConfig() (frontendURL string, err error) {
	frontendURL = os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		return "", fmt.Errorf("stripe configuration missing: FRONTEND_URL not set")
	}
	return frontendURL, nil
}

type CheckoutRequest struct {
	CustomerName       string       `json:"customerName" binding:"required"`
	CustomerEmail      string       `json:"customerEmail" binding:"required,email"`
	CustomerPhone      string       `json:"customerPhone"`
	ShippingAddress    string       `json:"shippingAddress" binding:"required"`
	ShippingCity       string       `json:"shippingCity" binding:"required"`
	ShippingPostalCode string       `json:"shippingPostalCode" binding:"required"`
	ShippingCountry    string       `json:"shippingCountry" binding:"required"`
	Total              string       `json:"total" binding:"required"`
	Items              []IntentItem `json:"items" binding:"required,min=1"`
}

// unitAmount converts a decimal price string to minor currency units,
// rounding to the nearest cent.
func unitAmount(price string) (int64, error) {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return 0, err
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// buildLineItems produces one payment line per distinct product.
func buildLineItems(items []IntentItem) ([]*stripe.CheckoutSessionLineItemParams, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		amount, err := unitAmount(it.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for product %s", it.Price, it.ProductID)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %s", it.Quantity, it.ProductID)
		}

		name := it.ProductNameEn
		if name == "" {
			name = it.ProductNameFr
		}
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(name),
		}
		if it.ImageURL != "" {
			productData.Images = stripe.StringSlice([]string{it.ImageURL})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(it.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				UnitAmount:  stripe.Int64(amount),
				ProductData: productData,
			},
		})
	}
	return lineItems, nil
}

// checkTotal verifies the submitted total against the line items.
func checkTotal(req *CheckoutRequest) error {
	total, err := decimal.NewFromString(req.Total)
	if err != nil {
		return fmt.Errorf("invalid total %q", req.Total)
	}
	sum := decimal.Zero
	for _, it := range req.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return fmt.Errorf("invalid price %q for product %s", it.Price, it.ProductID)
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	if !sum.Equal(total) {
		return fmt.Errorf("total %s does not match line items sum %s", total, sum)
	}
	return nil
}

// CreateCheckoutSession builds a hosted payment session from the caller's
// cart and returns the redirect URL. No order is created here; order
// creation waits for the provider's confirmation webhook. A failed or
// abandoned checkout therefore leaves no residue.
//
// POST /api/create-checkout-session
func CreateCheckoutSession(sessions SessionCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		if err := checkTotal(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		frontendURL, err := getStripeConfig()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		lineItems, err := buildLineItems(req.Items)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		intent := OrderIntent{
			CustomerName:       req.CustomerName,
			CustomerEmail:      req.CustomerEmail,
			CustomerPhone:      req.CustomerPhone,
			ShippingAddress:    req.ShippingAddress,
			ShippingCity:       req.ShippingCity,
			ShippingPostalCode: req.ShippingPostalCode,
			ShippingCountry:    req.ShippingCountry,
			Total:              req.Total,
			Items:              req.Items,
		}
		encoded, err := intent.Encode()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode order"})
			return
		}

		params := &stripe.CheckoutSessionParams{
			Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			LineItems:          lineItems,
			CustomerEmail:      stripe.String(req.CustomerEmail),
			SuccessURL:         stripe.String(frontendURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
			CancelURL:          stripe.String(frontendURL + "/checkout/cancel"),
		}
		params.Params.AddMetadata("order", encoded)

		sess, err := sessions.New(params)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create checkout session: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": sess.URL})
	}
}
