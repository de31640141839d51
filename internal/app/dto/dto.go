package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Прайс-лист (Price Tables) ============

type PriceTableResponse struct {
	ID                string  `json:"id"`
	ProductType       string  `json:"product_type"`
	Quantity          int     `json:"quantity"`
	Price             int     `json:"price"`
	DesignFee         int     `json:"design_fee"`
	DesignFeeIncluded bool    `json:"design_fee_included"`
	Specifications    *string `json:"specifications,omitempty"`
	DeliveryDays      int     `json:"delivery_days"`
}

type PriceTableListResponse struct {
	PriceTables []PriceTableResponse `json:"price_tables"`
	Total       int                  `json:"total"`
}

type CreatePriceTableRequest struct {
	ProductType       string                 `json:"product_type" binding:"required,max=100"`
	Quantity          int                    `json:"quantity" binding:"required,gt=0"`
	Price             int                    `json:"price" binding:"gte=0"`
	DesignFee         int                    `json:"design_fee" binding:"gte=0"`
	DesignFeeIncluded bool                   `json:"design_fee_included"`
	Specifications    map[string]interface{} `json:"specifications"`
	DeliveryDays      int                    `json:"delivery_days" binding:"omitempty,gt=0"`
}

type UpdatePriceTableRequest struct {
	Price             *int  `json:"price" binding:"omitempty,gte=0"`
	DesignFee         *int  `json:"design_fee" binding:"omitempty,gte=0"`
	DesignFeeIncluded *bool `json:"design_fee_included"`
	DeliveryDays      *int  `json:"delivery_days" binding:"omitempty,gt=0"`
}

// ============ Смета (Estimate) ============

type EstimateRequest struct {
	ProductType    string                 `json:"product_type" binding:"required"`
	Quantity       int                    `json:"quantity" binding:"required,gt=0"`
	Specifications map[string]interface{} `json:"specifications"`
	DesignRequired bool                   `json:"design_required"`
}

type EstimateBreakdown struct {
	BasePrice int `json:"base_price"`
	DesignFee int `json:"design_fee"`
	Total     int `json:"total"`
}

type EstimateResponse struct {
	EstimatedPrice int               `json:"estimated_price"`
	Breakdown      EstimateBreakdown `json:"breakdown"`
	DeliveryDays   int               `json:"delivery_days"`
	PriceTableID   string            `json:"price_table_id"`
}

// ============ Заказы (Print Orders) ============

type CreateOrderRequest struct {
	ClinicName     string                 `json:"clinic_name" binding:"required,min=1,max=200"`
	Email          string                 `json:"email" binding:"required,email"`
	Pattern        string                 `json:"pattern" binding:"required,oneof=consultation reorder"`
	ProductType    *string                `json:"product_type" binding:"omitempty,max=100"`
	Quantity       *int                   `json:"quantity" binding:"omitempty,gt=0"`
	Specifications map[string]interface{} `json:"specifications"`
	DeliveryDate   *string                `json:"delivery_date"` // ISO 8601
	DesignRequired bool                   `json:"design_required"`
	Notes          *string                `json:"notes"`
}

type OrderResponse struct {
	ID                    string     `json:"id"`
	ClinicName            string     `json:"clinic_name"`
	Email                 string     `json:"email"`
	Pattern               string     `json:"pattern"`
	ProductType           *string    `json:"product_type,omitempty"`
	Quantity              *int       `json:"quantity,omitempty"`
	Specifications        *string    `json:"specifications,omitempty"`
	DeliveryDate          *time.Time `json:"delivery_date,omitempty"`
	DesignRequired        bool       `json:"design_required"`
	Notes                 *string    `json:"notes,omitempty"`
	EstimatedPrice        *int       `json:"estimated_price,omitempty"`
	PaymentMethod         *string    `json:"payment_method,omitempty"`
	PaymentStatus         string     `json:"payment_status"`
	OrderStatus           string     `json:"order_status"`
	StripePaymentIntentID *string    `json:"stripe_payment_intent_id,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type ApproveOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=stripe invoice"`
}

type UpdateOrderRequest struct {
	OrderStatus           *string `json:"order_status" binding:"omitempty,oneof=submitted confirmed in_production shipped completed cancelled"`
	PaymentStatus         *string `json:"payment_status" binding:"omitempty,oneof=pending paid invoiced"`
	PaymentMethod         *string `json:"payment_method" binding:"omitempty,oneof=stripe invoice"`
	StripePaymentIntentID *string `json:"stripe_payment_intent_id"`
}

type EstimatePDFURLResponse struct {
	OrderID string `json:"order_id"`
	URL     string `json:"url"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     int    `json:"role"`
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     int    `json:"role" binding:"omitempty,gte=0,lte=2"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
