package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// Таймаут на отправку уведомлений в фоне
const notifyTimeout = 10 * time.Second

type CreateOrderInput struct {
	ClinicName     string
	Email          string
	Pattern        ds.OrderPattern
	ProductType    *string
	Quantity       *int
	Specifications map[string]interface{}
	DeliveryDate   *time.Time
	DesignRequired bool
	Notes          *string
}

type UpdateOrderInput struct {
	OrderStatus           *ds.OrderStatus
	PaymentStatus         *ds.PaymentStatus
	PaymentMethod         *ds.PaymentMethod
	StripePaymentIntentID *string
}

// CreateOrder создает заказ. Для паттерна reorder смета считается синхронно,
// для consultation ценовые поля остаются пустыми.
func (s *PrintOrderService) CreateOrder(in CreateOrderInput) (*ds.PrintOrder, error) {
	if in.ClinicName == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: clinic name and email are required", ErrValidation)
	}
	if in.Pattern != ds.PatternConsultation && in.Pattern != ds.PatternReorder {
		return nil, fmt.Errorf("%w: unknown order pattern %q", ErrValidation, in.Pattern)
	}

	specifications, err := encodeSpecifications(in.Specifications)
	if err != nil {
		return nil, fmt.Errorf("%w: specifications are not serializable", ErrValidation)
	}

	var estimatedPrice *int
	if in.Pattern == ds.PatternReorder {
		if in.ProductType == nil || *in.ProductType == "" || in.Quantity == nil || *in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product type and quantity are required for reorder pattern", ErrValidation)
		}

		estimate, err := s.estimateFor(*in.ProductType, *in.Quantity, specifications, in.DesignRequired)
		if err != nil {
			// ErrNotFound от калькулятора уходит наверх без изменений
			return nil, err
		}
		estimatedPrice = &estimate.EstimatedPrice
	}

	order := &ds.PrintOrder{
		ClinicName:     in.ClinicName,
		Email:          in.Email,
		Pattern:        in.Pattern,
		ProductType:    in.ProductType,
		Quantity:       in.Quantity,
		Specifications: specifications,
		DeliveryDate:   in.DeliveryDate,
		DesignRequired: in.DesignRequired,
		Notes:          in.Notes,
		EstimatedPrice: estimatedPrice,
		PaymentStatus:  ds.PaymentPending,
		OrderStatus:    ds.OrderSubmitted,
	}

	if err := s.repo.CreatePrintOrder(order); err != nil {
		return nil, err
	}

	// Заказ уже сохранен: уведомления уходят в фоне и на результат не влияют
	s.dispatchNotifications(order)

	return order, nil
}

func (s *PrintOrderService) dispatchNotifications(order *ds.PrintOrder) {
	snapshot := *order
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyClinic(ctx, &snapshot); err != nil {
			logrus.Errorf("clinic notification failed for order %s: %v", snapshot.ID, err)
		}
		if err := s.notifier.NotifyStaff(ctx, &snapshot); err != nil {
			logrus.Errorf("staff notification failed for order %s: %v", snapshot.ID, err)
		}
	}()
}

func (s *PrintOrderService) GetOrder(id string) (*ds.PrintOrder, error) {
	order, err := s.repo.GetPrintOrderByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return order, nil
}

// ListOrders возвращает заказы новыми вперед, опционально по email
func (s *PrintOrderService) ListOrders(email string) ([]ds.PrintOrder, error) {
	return s.repo.GetPrintOrders(email)
}

// ApproveOrder подтверждает смету: только для паттерна reorder.
// Повторное подтверждение не считается ошибкой - операция идемпотентна.
func (s *PrintOrderService) ApproveOrder(id string, method ds.PaymentMethod) (*ds.PrintOrder, error) {
	if method != ds.PaymentMethodStripe && method != ds.PaymentMethodInvoice {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	if order.Pattern != ds.PatternReorder {
		return nil, fmt.Errorf("%w: consultation-pattern orders cannot be approved", ErrValidation)
	}

	updated, err := s.repo.UpdatePrintOrder(id, map[string]interface{}{
		"order_status":   ds.OrderConfirmed,
		"payment_method": method,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return updated, nil
}

// UpdateOrder применяет только явно переданные поля
func (s *PrintOrderService) UpdateOrder(id string, in UpdateOrderInput) (*ds.PrintOrder, error) {
	fields := map[string]interface{}{}

	if in.OrderStatus != nil {
		if !validOrderStatus(*in.OrderStatus) {
			return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, *in.OrderStatus)
		}
		fields["order_status"] = *in.OrderStatus
	}
	if in.PaymentStatus != nil {
		if !validPaymentStatus(*in.PaymentStatus) {
			return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, *in.PaymentStatus)
		}
		fields["payment_status"] = *in.PaymentStatus
	}
	if in.PaymentMethod != nil {
		if *in.PaymentMethod != ds.PaymentMethodStripe && *in.PaymentMethod != ds.PaymentMethodInvoice {
			return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, *in.PaymentMethod)
		}
		fields["payment_method"] = *in.PaymentMethod
	}
	if in.StripePaymentIntentID != nil {
		fields["stripe_payment_intent_id"] = *in.StripePaymentIntentID
	}

	if len(fields) == 0 {
		return s.GetOrder(id)
	}

	updated, err := s.repo.UpdatePrintOrder(id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return updated, nil
}

// CancelOrder отменяет заказ, если он еще не в терминальном статусе
func (s *PrintOrderService) CancelOrder(id string) (*ds.PrintOrder, error) {
	ok, err := s.repo.CancelPrintOrder(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		order, err := s.repo.GetPrintOrderByID(id)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: order %s is already %s", ErrValidation, id, order.OrderStatus)
	}
	return s.GetOrder(id)
}

// EstimateForOrder пересчитывает смету по сохраненному заказу.
// Смета считается заново через калькулятор, сохраненное значение не используется.
func (s *PrintOrderService) EstimateForOrder(id string) (*ds.PrintOrder, *Estimate, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, nil, err
	}

	if order.ProductType == nil || *order.ProductType == "" || order.Quantity == nil {
		return nil, nil, fmt.Errorf("%w: product type and quantity are required (reorder pattern only)", ErrValidation)
	}

	estimate, err := s.estimateFor(*order.ProductType, *order.Quantity, order.Specifications, order.DesignRequired)
	if err != nil {
		return nil, nil, err
	}
	return order, estimate, nil
}

func validOrderStatus(st ds.OrderStatus) bool {
	switch st {
	case ds.OrderSubmitted, ds.OrderConfirmed, ds.OrderInProduction, ds.OrderShipped, ds.OrderCompleted, ds.OrderCancelled:
		return true
	}
	return false
}

func validPaymentStatus(st ds.PaymentStatus) bool {
	switch st {
	case ds.PaymentPending, ds.PaymentPaid, ds.PaymentInvoiced:
		return true
	}
	return false
}
