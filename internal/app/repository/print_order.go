package repository

import (
	"errors"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с заказами

// Создать заказ
func (r *Repository) CreatePrintOrder(order *ds.PrintOrder) error {
	return r.db.Create(order).Error
}

// Получить заказ по ID
func (r *Repository) GetPrintOrderByID(id string) (*ds.PrintOrder, error) {
	var order ds.PrintOrder
	err := r.db.Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Получить список заказов, новые первыми. Пустой email - без фильтра.
func (r *Repository) GetPrintOrders(email string) ([]ds.PrintOrder, error) {
	query := r.db.Model(&ds.PrintOrder{})
	if email != "" {
		query = query.Where("email = ?", email)
	}

	var orders []ds.PrintOrder
	err := query.Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Частичное обновление заказа: затрагиваются только переданные поля.
// Возвращает обновленный заказ или nil если заказа нет.
func (r *Repository) UpdatePrintOrder(id string, fields map[string]interface{}) (*ds.PrintOrder, error) {
	result := r.db.Model(&ds.PrintOrder{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	// RowsAffected == 0 означает и "заказа нет", и "значения совпали",
	// поэтому различаем повторным чтением
	return r.GetPrintOrderByID(id)
}

// SQL операция отмены: разрешена только из нетерминальных статусов
func (r *Repository) CancelPrintOrder(id string) (bool, error) {
	result := r.db.Exec(
		"UPDATE print_orders SET order_status = 'cancelled' WHERE id = ? AND order_status NOT IN ('completed', 'cancelled')",
		id,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
