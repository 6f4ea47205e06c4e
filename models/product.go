package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	NameEn        string          `gorm:"not null" json:"nameEn"` // English name
	NameFr        string          `gorm:"not null" json:"nameFr"` // French name
	DescriptionEn string          `json:"descriptionEn"`
	DescriptionFr string          `json:"descriptionFr"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category      string          `gorm:"not null;index" json:"category"` // bowls, vases, mugs, plates, ...
	ImageURL      string          `gorm:"not null" json:"imageUrl"`
	ImageURLs     pq.StringArray  `gorm:"type:text[]" json:"imageUrls"`
	InStock       bool            `gorm:"not null;default:true" json:"inStock"`
	Featured      bool            `gorm:"not null;default:false" json:"featured"`
	Dimensions    string          `json:"dimensions,omitempty"`
	Materials     string          `json:"materials,omitempty"`
	CareText      string          `gorm:"column:care_instructions" json:"careInstructions,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
