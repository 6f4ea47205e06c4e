package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one line of a guest cart. The session id is an opaque token
// generated by the browser; it identifies the cart owner without any
// account or authentication behind it.
type CartItem struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	SessionID string    `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"sessionId"`
	ProductID string    `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"productId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}
