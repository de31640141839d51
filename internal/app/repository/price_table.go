package repository

import (
	"errors"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с прайс-листом

// Получить все позиции прайс-листа
func (r *Repository) GetAllPriceTables() ([]ds.PriceTable, error) {
	var entries []ds.PriceTable
	err := r.db.Order("product_type, quantity").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Получить позицию прайс-листа по ID
func (r *Repository) GetPriceTableByID(id string) (*ds.PriceTable, error) {
	var entry ds.PriceTable
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Записи нет - не ошибка хранилища
		}
		return nil, err
	}
	return &entry, nil
}

// Найти позицию по типу продукции и тиражу.
// Спецификация фильтрует только если передана. При нескольких совпадениях
// берется строка с наименьшим id - детерминированный tie-break.
func (r *Repository) FindMatchingPriceTable(productType string, quantity int, specifications *string) (*ds.PriceTable, error) {
	query := r.db.Where("product_type = ? AND quantity = ?", productType, quantity)
	if specifications != nil && *specifications != "" {
		query = query.Where("specifications = ?", *specifications)
	}

	var entry ds.PriceTable
	err := query.Order("id").First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Создать позицию прайс-листа
func (r *Repository) CreatePriceTable(entry *ds.PriceTable) error {
	return r.db.Create(entry).Error
}

// Обновить позицию прайс-листа (только переданные поля)
func (r *Repository) UpdatePriceTable(id string, fields map[string]interface{}) (bool, error) {
	result := r.db.Model(&ds.PriceTable{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Удалить позицию прайс-листа
func (r *Repository) DeletePriceTable(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&ds.PriceTable{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
