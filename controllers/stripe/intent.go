package stripeControllers

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mabolhal/sanapottery/models"
)

// IntentItem is one purchased line as carried through provider metadata.
type IntentItem struct {
	ProductID     string `json:"productId"`
	ProductNameEn string `json:"productNameEn"`
	ProductNameFr string `json:"productNameFr"`
	Quantity      int    `json:"quantity"`
	Price         string `json:"price"`
	ImageURL      string `json:"imageUrl"`
}

// OrderIntent is the order-to-be, serialized into the checkout session's
// metadata when the session is created and decoded again by the webhook.
// No order row exists until the provider confirms payment.
type OrderIntent struct {
	CustomerName       string       `json:"customerName"`
	CustomerEmail      string       `json:"customerEmail"`
	CustomerPhone      string       `json:"customerPhone,omitempty"`
	ShippingAddress    string       `json:"shippingAddress"`
	ShippingCity       string       `json:"shippingCity"`
	ShippingPostalCode string       `json:"shippingPostalCode"`
	ShippingCountry    string       `json:"shippingCountry"`
	Total              string       `json:"total"`
	Items              []IntentItem `json:"items"`
}

func (in *OrderIntent) Encode() (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func DecodeOrderIntent(raw string) (*OrderIntent, error) {
	var intent OrderIntent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		return nil, err
	}
	if len(intent.Items) == 0 {
		return nil, fmt.Errorf("order intent has no items")
	}
	return &intent, nil
}

// Order materializes the intent into a pending order keyed by the
// provider's checkout session id.
func (in *OrderIntent) Order(checkoutSessionID string) (*models.Order, error) {
	total, err := decimal.NewFromString(in.Total)
	if err != nil {
		return nil, fmt.Errorf("invalid total %q: %w", in.Total, err)
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for product %s: %w", it.Price, it.ProductID, err)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %s", it.Quantity, it.ProductID)
		}
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			NameEn:    it.ProductNameEn,
			NameFr:    it.ProductNameFr,
			Quantity:  it.Quantity,
			UnitPrice: price,
			ImageURL:  it.ImageURL,
		})
	}

	return &models.Order{
		CustomerName:       in.CustomerName,
		CustomerEmail:      in.CustomerEmail,
		CustomerPhone:      in.CustomerPhone,
		ShippingAddress:    in.ShippingAddress,
		ShippingCity:       in.ShippingCity,
		ShippingPostalCode: in.ShippingPostalCode,
		ShippingCountry:    in.ShippingCountry,
		Total:              total,
		Status:             models.OrderStatusPending,
		CheckoutSessionID:  checkoutSessionID,
		Items:              items,
	}, nil
}
