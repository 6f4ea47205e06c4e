package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mabolhal/sanapottery/models"
)

// Memory is a map-backed Storage with the same contract as DB. It backs
// the handler tests and local development without a database.
type Memory struct {
	mu       sync.Mutex
	products map[string]models.Product
	cart     map[string]models.CartItem
	orders   map[string]models.Order
}

func NewMemory() *Memory {
	return &Memory{
		products: make(map[string]models.Product),
		cart:     make(map[string]models.CartItem),
		orders:   make(map[string]models.Order),
	}
}

// -------- Products --------

func (m *Memory) Products(f ProductFilter) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Featured && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) Product(id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *Memory) CreateProduct(p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.products[p.ID] = *p
	return nil
}

func (m *Memory) UpdateProduct(id string, upd ProductUpdate) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.NameEn != nil {
		p.NameEn = *upd.NameEn
	}
	if upd.NameFr != nil {
		p.NameFr = *upd.NameFr
	}
	if upd.DescriptionEn != nil {
		p.DescriptionEn = *upd.DescriptionEn
	}
	if upd.DescriptionFr != nil {
		p.DescriptionFr = *upd.DescriptionFr
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	if upd.ImageURLs != nil {
		p.ImageURLs = *upd.ImageURLs
	}
	if upd.InStock != nil {
		p.InStock = *upd.InStock
	}
	if upd.Featured != nil {
		p.Featured = *upd.Featured
	}
	if upd.Dimensions != nil {
		p.Dimensions = *upd.Dimensions
	}
	if upd.Materials != nil {
		p.Materials = *upd.Materials
	}
	if upd.CareText != nil {
		p.CareText = *upd.CareText
	}
	m.products[id] = p
	return &p, nil
}

func (m *Memory) DeleteProduct(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// -------- Cart --------

func (m *Memory) CartItems(sessionID string) ([]CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := make([]CartLine, 0)
	for _, it := range m.cart {
		if it.SessionID != sessionID {
			continue
		}
		p, ok := m.products[it.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, CartLine{CartItem: it, Product: p})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].CreatedAt.Before(lines[j].CreatedAt)
	})
	return lines, nil
}

func (m *Memory) AddCartItem(sessionID, productID string, quantity int) (*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, it := range m.cart {
		if it.SessionID == sessionID && it.ProductID == productID {
			it.Quantity += quantity
			m.cart[id] = it
			return &it, nil
		}
	}
	item := models.CartItem{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	m.cart[item.ID] = item
	return &item, nil
}

func (m *Memory) UpdateCartItem(id string, quantity int) (*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.cart[id]
	if !ok {
		return nil, ErrNotFound
	}
	it.Quantity = quantity
	m.cart[id] = it
	return &it, nil
}

func (m *Memory) RemoveCartItem(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.cart, id)
	return nil
}

func (m *Memory) ClearCart(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, it := range m.cart {
		if it.SessionID == sessionID {
			delete(m.cart, id)
		}
	}
	return nil
}

// -------- Orders --------

func (m *Memory) Orders() ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) Order(id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (m *Memory) CreateOrder(o *models.Order) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if o.CheckoutSessionID != "" {
		for _, existing := range m.orders {
			if existing.CheckoutSessionID == o.CheckoutSessionID {
				return &existing, nil
			}
		}
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = uuid.NewString()
		}
		o.Items[i].OrderID = o.ID
	}
	m.orders[o.ID] = *o
	return o, nil
}

func (m *Memory) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	m.orders[id] = o
	return &o, nil
}
