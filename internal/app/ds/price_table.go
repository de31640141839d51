package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 1. Таблица прайс-листа - цены по тиражам (quantity - ступень тиража, не множитель)
type PriceTable struct {
	ID                string  `gorm:"type:uuid;primaryKey"`
	ProductType       string  `gorm:"type:varchar(100);not null;index:idx_price_match"`
	Quantity          int     `gorm:"not null;index:idx_price_match"`
	Price             int     `gorm:"not null"` // Итоговая цена за весь тираж, целые иены
	DesignFee         int     `gorm:"not null;default:0"`
	DesignFeeIncluded bool    `gorm:"not null;default:false"`
	Specifications    *string `gorm:"type:text"` // JSON строка со спецификацией (nullable)
	DeliveryDays      int     `gorm:"not null;default:14"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p *PriceTable) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
