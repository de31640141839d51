package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Паттерн заказа
type OrderPattern string

const (
	PatternConsultation OrderPattern = "consultation" // свободная форма, без автоматического расчета
	PatternReorder      OrderPattern = "reorder"      // повторный заказ, расчет обязателен
)

// Статус заказа
type OrderStatus string

const (
	OrderSubmitted    OrderStatus = "submitted"
	OrderConfirmed    OrderStatus = "confirmed"
	OrderInProduction OrderStatus = "in_production"
	OrderShipped      OrderStatus = "shipped"
	OrderCompleted    OrderStatus = "completed"
	OrderCancelled    OrderStatus = "cancelled"
)

// Статус оплаты
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentInvoiced PaymentStatus = "invoiced"
)

// Способ оплаты
type PaymentMethod string

const (
	PaymentMethodStripe  PaymentMethod = "stripe"
	PaymentMethodInvoice PaymentMethod = "invoice"
)

// 2. Таблица заказов печатной продукции
type PrintOrder struct {
	ID             string       `gorm:"type:uuid;primaryKey"`
	ClinicName     string       `gorm:"type:varchar(200);not null"`
	Email          string       `gorm:"type:varchar(100);not null;index"`
	Pattern        OrderPattern `gorm:"type:varchar(20);not null"`
	ProductType    *string      `gorm:"type:varchar(100)"`
	Quantity       *int
	Specifications *string    `gorm:"type:text"` // JSON строка со спецификацией
	DeliveryDate   *time.Time `gorm:"default:null"`
	DesignRequired bool       `gorm:"not null;default:false"`
	Notes          *string    `gorm:"type:text"`
	// Рассчитываемое поле: никогда не приходит от клиента напрямую
	EstimatedPrice        *int
	PaymentMethod         *PaymentMethod `gorm:"type:varchar(20);default:null"`
	PaymentStatus         PaymentStatus  `gorm:"type:varchar(20);not null;default:'pending'"`
	OrderStatus           OrderStatus    `gorm:"type:varchar(20);not null;default:'submitted'"`
	StripePaymentIntentID *string        `gorm:"type:varchar(100)"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (o *PrintOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Терминальные статусы: отмена из них уже невозможна
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}
