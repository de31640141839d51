package notify

import (
	"context"
	"strconv"

	"backend/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// Notifier отправляет уведомления о заказе. Обе отправки best-effort:
// ошибка логируется вызывающей стороной и никогда не влияет на заказ.
type Notifier interface {
	NotifyClinic(ctx context.Context, order *ds.PrintOrder) error
	NotifyStaff(ctx context.Context, order *ds.PrintOrder) error
}

// LogNotifier - MVP реализация: вместо SMTP пишет письмо в лог.
// Боевая реализация подключается через тот же интерфейс.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyClinic(ctx context.Context, order *ds.PrintOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"to":       order.Email,
	}).Infof("[mail->clinic] order received: clinic=%s product=%s quantity=%s price=%s",
		order.ClinicName,
		strOrTBD(order.ProductType),
		intOrTBD(order.Quantity),
		priceOrTBD(order.EstimatedPrice))
	return nil
}

func (n *LogNotifier) NotifyStaff(ctx context.Context, order *ds.PrintOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	notes := ""
	if order.Notes != nil {
		notes = *order.Notes
	}
	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"pattern":  order.Pattern,
	}).Infof("[mail->staff] new order: clinic=%s email=%s product=%s quantity=%s notes=%q",
		order.ClinicName,
		order.Email,
		strOrTBD(order.ProductType),
		intOrTBD(order.Quantity),
		notes)
	return nil
}

func strOrTBD(s *string) string {
	if s == nil || *s == "" {
		return "(undecided)"
	}
	return *s
}

func intOrTBD(v *int) string {
	if v == nil {
		return "(undecided)"
	}
	return strconv.Itoa(*v)
}

func priceOrTBD(v *int) string {
	if v == nil {
		return "(not estimated)"
	}
	return "¥" + strconv.Itoa(*v)
}
