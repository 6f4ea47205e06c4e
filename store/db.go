package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mabolhal/sanapottery/models"
)

// DB is the gorm-backed Storage used by the running server.
type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

// -------- Products --------

func (s *DB) Products(f ProductFilter) ([]models.Product, error) {
	q := s.db.Order("created_at DESC")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Featured {
		q = q.Where("featured = ?", true)
	}
	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *DB) Product(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *DB) CreateProduct(p *models.Product) error {
	return s.db.Create(p).Error
}

func (s *DB) UpdateProduct(id string, upd ProductUpdate) (*models.Product, error) {
	updates := map[string]interface{}{}
	if upd.NameEn != nil {
		updates["name_en"] = *upd.NameEn
	}
	if upd.NameFr != nil {
		updates["name_fr"] = *upd.NameFr
	}
	if upd.DescriptionEn != nil {
		updates["description_en"] = *upd.DescriptionEn
	}
	if upd.DescriptionFr != nil {
		updates["description_fr"] = *upd.DescriptionFr
	}
	if upd.Price != nil {
		updates["price"] = *upd.Price
	}
	if upd.Category != nil {
		updates["category"] = *upd.Category
	}
	if upd.ImageURL != nil {
		updates["image_url"] = *upd.ImageURL
	}
	if upd.ImageURLs != nil {
		updates["image_urls"] = *upd.ImageURLs
	}
	if upd.InStock != nil {
		updates["in_stock"] = *upd.InStock
	}
	if upd.Featured != nil {
		updates["featured"] = *upd.Featured
	}
	if upd.Dimensions != nil {
		updates["dimensions"] = *upd.Dimensions
	}
	if upd.Materials != nil {
		updates["materials"] = *upd.Materials
	}
	if upd.CareText != nil {
		updates["care_instructions"] = *upd.CareText
	}

	if len(updates) > 0 {
		res := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.Product(id)
}

func (s *DB) DeleteProduct(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- Cart --------

// CartItems returns the session's rows joined to current product data.
// Rows whose product has since been deleted are dropped from the result.
func (s *DB) CartItems(sessionID string) ([]CartLine, error) {
	var items []models.CartItem
	if err := s.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	var products []models.Product
	if len(ids) > 0 {
		if err := s.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
			return nil, err
		}
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, CartLine{CartItem: it, Product: p})
	}
	return lines, nil
}

// AddCartItem inserts a row or, if the session already holds the product,
// increments its quantity. The two cases are a single upsert statement so
// concurrent adds cannot lose an increment.
func (s *DB) AddCartItem(sessionID, productID string, quantity int) (*models.CartItem, error) {
	item := models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	// The upsert does not report the post-conflict row; read it back.
	var stored models.CartItem
	if err := s.db.Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *DB) UpdateCartItem(id string, quantity int) (*models.CartItem, error) {
	res := s.db.Model(&models.CartItem{}).Where("id = ?", id).
		Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var item models.CartItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes one row; removing an id that no longer exists is
// a successful no-op.
func (s *DB) RemoveCartItem(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.CartItem{}).Error
}

func (s *DB) ClearCart(sessionID string) error {
	return s.db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}

// -------- Orders --------

func (s *DB) Orders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *DB) Order(id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// CreateOrder persists an order with its item snapshot. Orders are keyed
// by the provider's checkout session id: a redelivered confirmation finds
// the stored order and inserts nothing. The unique index on
// checkout_session_id backstops the lookup under concurrent delivery.
func (s *DB) CreateOrder(o *models.Order) (*models.Order, error) {
	var out *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if o.CheckoutSessionID != "" {
			var existing models.Order
			err := tx.Preload("Items").
				Where("checkout_session_id = ?", o.CheckoutSessionID).
				First(&existing).Error
			if err == nil {
				out = &existing
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil && o.CheckoutSessionID != "" {
		// Lost a race against a concurrent delivery of the same event.
		var existing models.Order
		if ferr := s.db.Preload("Items").
			Where("checkout_session_id = ?", o.CheckoutSessionID).
			First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return out, err
}

// UpdateOrderStatus overwrites the status unconditionally; there is no
// transition graph.
func (s *DB) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	res := s.db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Order(id)
}
