package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabolhal/sanapottery/models"
)

func newTestProduct(nameEn, price string) *models.Product {
	return &models.Product{
		NameEn:   nameEn,
		NameFr:   nameEn + " (fr)",
		Price:    decimal.RequireFromString(price),
		Category: "bowls",
		ImageURL: "/uploads/products/test.png",
		InStock:  true,
	}
}

func TestAddCartItemIncrementsExistingRow(t *testing.T) {
	s := NewMemory()
	p := newTestProduct("Rustic Terracotta Bowl", "45.00")
	require.NoError(t, s.CreateProduct(p))

	first, err := s.AddCartItem("session_abc", p.ID, 2)
	require.NoError(t, err)
	second, err := s.AddCartItem("session_abc", p.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same product must reuse the row")
	assert.Equal(t, 5, second.Quantity)

	lines, err := s.CartItems("session_abc")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddCartItemSeparateSessions(t *testing.T) {
	s := NewMemory()
	p := newTestProduct("Sage Green Vase", "68.00")
	require.NoError(t, s.CreateProduct(p))

	_, err := s.AddCartItem("session_a", p.ID, 1)
	require.NoError(t, err)
	_, err = s.AddCartItem("session_b", p.ID, 1)
	require.NoError(t, err)

	a, _ := s.CartItems("session_a")
	b, _ := s.CartItems("session_b")
	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
}

func TestRemoveCartItemIsIdempotent(t *testing.T) {
	s := NewMemory()
	assert.NoError(t, s.RemoveCartItem("no-such-id"))

	p := newTestProduct("Morning Coffee Mug", "32.00")
	require.NoError(t, s.CreateProduct(p))
	item, err := s.AddCartItem("session_abc", p.ID, 1)
	require.NoError(t, err)

	assert.NoError(t, s.RemoveCartItem(item.ID))
	assert.NoError(t, s.RemoveCartItem(item.ID))

	lines, _ := s.CartItems("session_abc")
	assert.Empty(t, lines)
}

func TestClearCartIsIdempotent(t *testing.T) {
	s := NewMemory()
	p := newTestProduct("Artisan Dinner Plate", "52.00")
	require.NoError(t, s.CreateProduct(p))
	_, err := s.AddCartItem("session_abc", p.ID, 2)
	require.NoError(t, err)

	require.NoError(t, s.ClearCart("session_abc"))
	lines, _ := s.CartItems("session_abc")
	assert.Empty(t, lines)

	require.NoError(t, s.ClearCart("session_abc"))
}

func TestCartItemsDropDeadProductReferences(t *testing.T) {
	s := NewMemory()
	kept := newTestProduct("Kept", "10.00")
	gone := newTestProduct("Gone", "20.00")
	require.NoError(t, s.CreateProduct(kept))
	require.NoError(t, s.CreateProduct(gone))

	_, err := s.AddCartItem("session_abc", kept.ID, 1)
	require.NoError(t, err)
	_, err = s.AddCartItem("session_abc", gone.ID, 1)
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(gone.ID))

	lines, err := s.CartItems("session_abc")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, kept.ID, lines[0].ProductID)
}

func TestUpdateCartItemUnknownID(t *testing.T) {
	s := NewMemory()
	_, err := s.UpdateCartItem("no-such-id", 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func newTestOrder(sessionID string) *models.Order {
	return &models.Order{
		CustomerName:       "Marie Tremblay",
		CustomerEmail:      "marie@example.com",
		ShippingAddress:    "12 Rue des Érables",
		ShippingCity:       "Montréal",
		ShippingPostalCode: "H2X 1Y4",
		ShippingCountry:    "Canada",
		Total:              decimal.RequireFromString("158.00"),
		CheckoutSessionID:  sessionID,
		Items: []models.OrderItem{
			{
				ProductID: "p1",
				NameEn:    "Rustic Terracotta Bowl",
				NameFr:    "Bol en Terre Cuite Rustique",
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("45.00"),
				ImageURL:  "/uploads/products/terracotta-bowl.png",
			},
			{
				ProductID: "p2",
				NameEn:    "Sage Green Vase",
				NameFr:    "Vase Vert Sauge",
				Quantity:  1,
				UnitPrice: decimal.RequireFromString("68.00"),
				ImageURL:  "/uploads/products/sage-vase.png",
			},
		},
	}
}

func TestCreateOrderIsIdempotentOnSessionID(t *testing.T) {
	s := NewMemory()

	first, err := s.CreateOrder(newTestOrder("cs_test_123"))
	require.NoError(t, err)
	second, err := s.CreateOrder(newTestOrder("cs_test_123"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	orders, err := s.Orders()
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderSnapshotSurvivesProductDeletion(t *testing.T) {
	s := NewMemory()
	p := newTestProduct("Rustic Terracotta Bowl", "45.00")
	require.NoError(t, s.CreateProduct(p))

	o := newTestOrder("cs_test_snapshot")
	o.Items = o.Items[:1]
	o.Items[0].ProductID = p.ID
	o.Total = decimal.RequireFromString("90.00")
	created, err := s.CreateOrder(o)
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(p.ID))

	got, err := s.Order(created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Rustic Terracotta Bowl", got.Items[0].NameEn)
	assert.True(t, got.Items[0].UnitPrice.Equal(decimal.RequireFromString("45.00")))
}

func TestOrderTotalMatchesItemSubtotals(t *testing.T) {
	s := NewMemory()
	created, err := s.CreateOrder(newTestOrder("cs_test_total"))
	require.NoError(t, err)

	sum := decimal.Zero
	for _, it := range created.Items {
		sum = sum.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.True(t, created.Total.Equal(sum), "total %s != items sum %s", created.Total, sum)
}

func TestOrdersNewestFirst(t *testing.T) {
	s := NewMemory()

	older := newTestOrder("cs_older")
	older.CreatedAt = time.Now().Add(-time.Hour)
	_, err := s.CreateOrder(older)
	require.NoError(t, err)

	newer := newTestOrder("cs_newer")
	_, err = s.CreateOrder(newer)
	require.NoError(t, err)

	orders, err := s.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "cs_newer", orders[0].CheckoutSessionID)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := NewMemory()
	created, err := s.CreateOrder(newTestOrder("cs_status"))
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, created.Status)

	updated, err := s.UpdateOrderStatus(created.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	_, err = s.UpdateOrderStatus("no-such-order", models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProductPartial(t *testing.T) {
	s := NewMemory()
	p := newTestProduct("Textured Ceramic Vase", "84.00")
	require.NoError(t, s.CreateProduct(p))

	featured := true
	updated, err := s.UpdateProduct(p.ID, ProductUpdate{Featured: &featured})
	require.NoError(t, err)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Textured Ceramic Vase", updated.NameEn, "untouched fields must survive")
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("84.00")))
}
