package service

import (
	"encoding/json"
	"fmt"
)

type EstimateRequest struct {
	ProductType    string
	Quantity       int
	Specifications map[string]interface{}
	DesignRequired bool
}

type EstimateBreakdown struct {
	BasePrice int
	DesignFee int
	Total     int
}

type Estimate struct {
	EstimatedPrice int
	Breakdown      EstimateBreakdown
	DeliveryDays   int
	PriceTableID   string
}

// encodeSpecifications приводит спецификацию к канонической строке.
// json.Marshal сортирует ключи, поэтому форма детерминирована.
func encodeSpecifications(spec map[string]interface{}) (*string, error) {
	if len(spec) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// CalculateEstimate подбирает позицию прайс-листа и считает смету
func (s *PrintOrderService) CalculateEstimate(req EstimateRequest) (*Estimate, error) {
	if req.ProductType == "" {
		return nil, fmt.Errorf("%w: product type is required", ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	specifications, err := encodeSpecifications(req.Specifications)
	if err != nil {
		return nil, fmt.Errorf("%w: specifications are not serializable", ErrValidation)
	}

	return s.estimateFor(req.ProductType, req.Quantity, specifications, req.DesignRequired)
}

func (s *PrintOrderService) estimateFor(productType string, quantity int, specifications *string, designRequired bool) (*Estimate, error) {
	entry, err := s.repo.FindMatchingPriceTable(productType, quantity, specifications)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		// Отсутствие цены - всегда жесткая ошибка, нулем не подменяем
		return nil, fmt.Errorf("%w: no price entry for product %q, quantity %d", ErrNotFound, productType, quantity)
	}

	designFee := 0
	if !entry.DesignFeeIncluded && designRequired {
		designFee = entry.DesignFee
	}

	// Цена в прайс-листе - уже итог за тираж, на количество не умножаем
	total := entry.Price + designFee

	return &Estimate{
		EstimatedPrice: total,
		Breakdown: EstimateBreakdown{
			BasePrice: entry.Price,
			DesignFee: designFee,
			Total:     total,
		},
		DeliveryDays: entry.DeliveryDays,
		PriceTableID: entry.ID,
	}, nil
}
