package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Confirmed payment, awaiting fulfillment
	OrderStatusProcessing OrderStatus = "processing" // Being packed
	OrderStatusShipped    OrderStatus = "shipped"    // Handed to carrier
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the parcel
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is created exactly once, by the payment webhook, after the
// provider confirms the checkout session. CheckoutSessionID carries a
// unique index so a redelivered confirmation can never insert twice.
type Order struct {
	ID                 string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	CustomerName       string          `gorm:"not null" json:"customerName"`
	CustomerEmail      string          `gorm:"not null" json:"customerEmail"`
	CustomerPhone      string          `json:"customerPhone,omitempty"`
	ShippingAddress    string          `gorm:"not null" json:"shippingAddress"`
	ShippingCity       string          `gorm:"not null" json:"shippingCity"`
	ShippingPostalCode string          `gorm:"not null" json:"shippingPostalCode"`
	ShippingCountry    string          `gorm:"not null" json:"shippingCountry"`
	Total              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status             OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CheckoutSessionID  string          `gorm:"uniqueIndex" json:"-"`
	Items              []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// OrderItem is a frozen snapshot of a purchased product. Later edits or
// deletion of the product never touch these rows.
type OrderItem struct {
	ID        string          `gorm:"type:varchar(36);primaryKey" json:"-"`
	OrderID   string          `gorm:"index" json:"-"`
	ProductID string          `gorm:"not null" json:"productId"`
	NameEn    string          `json:"productNameEn"`
	NameFr    string          `json:"productNameFr"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL  string          `json:"imageUrl"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
