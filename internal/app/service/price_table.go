package service

import (
	"fmt"

	"backend/internal/app/ds"
)

const priceTablesCacheKey = "price_tables:all"

type CreatePriceTableInput struct {
	ProductType       string
	Quantity          int
	Price             int
	DesignFee         int
	DesignFeeIncluded bool
	Specifications    map[string]interface{}
	DeliveryDays      int
}

type UpdatePriceTableInput struct {
	Price             *int
	DesignFee         *int
	DesignFeeIncluded *bool
	DeliveryDays      *int
}

// ListPriceTables отдает прайс-лист через сквозной кэш.
// Прайс меняется редко, часовое устаревание допустимо.
func (s *PrintOrderService) ListPriceTables() ([]ds.PriceTable, error) {
	if cached, ok := s.catalog.Get(priceTablesCacheKey); ok {
		if entries, ok := cached.([]ds.PriceTable); ok {
			return entries, nil
		}
	}

	entries, err := s.repo.GetAllPriceTables()
	if err != nil {
		return nil, err
	}

	s.catalog.Set(priceTablesCacheKey, entries)
	return entries, nil
}

func (s *PrintOrderService) GetPriceTable(id string) (*ds.PriceTable, error) {
	entry, err := s.repo.GetPriceTableByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: price table %s", ErrNotFound, id)
	}
	return entry, nil
}

// CreatePriceTable добавляет позицию прайс-листа (админская операция)
func (s *PrintOrderService) CreatePriceTable(in CreatePriceTableInput) (*ds.PriceTable, error) {
	if in.ProductType == "" {
		return nil, fmt.Errorf("%w: product type is required", ErrValidation)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if in.Price < 0 || in.DesignFee < 0 {
		return nil, fmt.Errorf("%w: prices must be non-negative", ErrValidation)
	}

	specifications, err := encodeSpecifications(in.Specifications)
	if err != nil {
		return nil, fmt.Errorf("%w: specifications are not serializable", ErrValidation)
	}

	deliveryDays := in.DeliveryDays
	if deliveryDays <= 0 {
		deliveryDays = 14
	}

	entry := &ds.PriceTable{
		ProductType:       in.ProductType,
		Quantity:          in.Quantity,
		Price:             in.Price,
		DesignFee:         in.DesignFee,
		DesignFeeIncluded: in.DesignFeeIncluded,
		Specifications:    specifications,
		DeliveryDays:      deliveryDays,
	}

	if err := s.repo.CreatePriceTable(entry); err != nil {
		return nil, err
	}

	s.catalog.Delete(priceTablesCacheKey)
	return entry, nil
}

func (s *PrintOrderService) UpdatePriceTable(id string, in UpdatePriceTableInput) (*ds.PriceTable, error) {
	fields := map[string]interface{}{}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		fields["price"] = *in.Price
	}
	if in.DesignFee != nil {
		if *in.DesignFee < 0 {
			return nil, fmt.Errorf("%w: design fee must be non-negative", ErrValidation)
		}
		fields["design_fee"] = *in.DesignFee
	}
	if in.DesignFeeIncluded != nil {
		fields["design_fee_included"] = *in.DesignFeeIncluded
	}
	if in.DeliveryDays != nil {
		if *in.DeliveryDays <= 0 {
			return nil, fmt.Errorf("%w: delivery days must be positive", ErrValidation)
		}
		fields["delivery_days"] = *in.DeliveryDays
	}

	if len(fields) > 0 {
		ok, err := s.repo.UpdatePriceTable(id, fields)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: price table %s", ErrNotFound, id)
		}
		s.catalog.Delete(priceTablesCacheKey)
	}

	return s.GetPriceTable(id)
}

func (s *PrintOrderService) DeletePriceTable(id string) error {
	ok, err := s.repo.DeletePriceTable(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: price table %s", ErrNotFound, id)
	}

	s.catalog.Delete(priceTablesCacheKey)
	return nil
}
