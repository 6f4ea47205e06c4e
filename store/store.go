package store

import (
	"errors"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/mabolhal/sanapottery/models"
)

// ErrNotFound is returned for lookups of ids that do not exist.
var ErrNotFound = errors.New("record not found")

// CartLine is a cart row joined to the product it references.
type CartLine struct {
	models.CartItem
	Product models.Product `json:"product"`
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
	Featured bool
}

// ProductUpdate carries a partial product edit; nil fields are untouched.
type ProductUpdate struct {
	NameEn        *string          `json:"nameEn"`
	NameFr        *string          `json:"nameFr"`
	DescriptionEn *string          `json:"descriptionEn"`
	DescriptionFr *string          `json:"descriptionFr"`
	Price         *decimal.Decimal `json:"price"`
	Category      *string          `json:"category"`
	ImageURL      *string          `json:"imageUrl"`
	ImageURLs     *pq.StringArray  `json:"imageUrls"`
	InStock       *bool            `json:"inStock"`
	Featured      *bool            `json:"featured"`
	Dimensions    *string          `json:"dimensions"`
	Materials     *string          `json:"materials"`
	CareText      *string          `json:"careInstructions"`
}

// Storage is the durable state behind the API. The gorm implementation
// (DB) backs the running server; Memory backs the tests.
type Storage interface {
	// Products
	Products(f ProductFilter) ([]models.Product, error)
	Product(id string) (*models.Product, error)
	CreateProduct(p *models.Product) error
	UpdateProduct(id string, upd ProductUpdate) (*models.Product, error)
	DeleteProduct(id string) error

	// Cart
	CartItems(sessionID string) ([]CartLine, error)
	AddCartItem(sessionID, productID string, quantity int) (*models.CartItem, error)
	UpdateCartItem(id string, quantity int) (*models.CartItem, error)
	RemoveCartItem(id string) error
	ClearCart(sessionID string) error

	// Orders
	Orders() ([]models.Order, error)
	Order(id string) (*models.Order, error)
	CreateOrder(o *models.Order) (*models.Order, error)
	UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error)
}
