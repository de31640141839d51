package service

import (
	"errors"
	"testing"
)

func TestCalculateEstimateWithDesignFee(t *testing.T) {
	svc, _ := newTestService(t)
	entry := seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType: "business_card",
		Quantity:    100,
		Price:       5000,
		DesignFee:   1000,
	})

	estimate, err := svc.CalculateEstimate(EstimateRequest{
		ProductType:    "business_card",
		Quantity:       100,
		DesignRequired: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if estimate.EstimatedPrice != 6000 {
		t.Errorf("expected total 6000, got %d", estimate.EstimatedPrice)
	}
	if estimate.Breakdown.BasePrice != 5000 || estimate.Breakdown.DesignFee != 1000 {
		t.Errorf("unexpected breakdown: %+v", estimate.Breakdown)
	}
	if estimate.PriceTableID != entry.ID {
		t.Errorf("expected price table %s, got %s", entry.ID, estimate.PriceTableID)
	}
	if estimate.DeliveryDays != 14 {
		t.Errorf("expected default 14 delivery days, got %d", estimate.DeliveryDays)
	}
}

func TestCalculateEstimateDesignNotRequired(t *testing.T) {
	svc, _ := newTestService(t)
	seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType: "business_card",
		Quantity:    100,
		Price:       5000,
		DesignFee:   1000,
	})

	estimate, err := svc.CalculateEstimate(EstimateRequest{
		ProductType: "business_card",
		Quantity:    100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if estimate.EstimatedPrice != 5000 {
		t.Errorf("expected total 5000 without design, got %d", estimate.EstimatedPrice)
	}
	if estimate.Breakdown.DesignFee != 0 {
		t.Errorf("expected zero design fee, got %d", estimate.Breakdown.DesignFee)
	}
}

func TestCalculateEstimateDesignFeeIncluded(t *testing.T) {
	svc, _ := newTestService(t)
	seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType:       "envelope",
		Quantity:          500,
		Price:             15000,
		DesignFee:         3000,
		DesignFeeIncluded: true,
	})

	estimate, err := svc.CalculateEstimate(EstimateRequest{
		ProductType:    "envelope",
		Quantity:       500,
		DesignRequired: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Дизайн входит в тарифную цену, доплаты нет
	if estimate.EstimatedPrice != 15000 {
		t.Errorf("expected total 15000, got %d", estimate.EstimatedPrice)
	}
	if estimate.Breakdown.DesignFee != 0 {
		t.Errorf("expected zero design fee, got %d", estimate.Breakdown.DesignFee)
	}
}

func TestCalculateEstimateTierPriceNotMultiplied(t *testing.T) {
	svc, _ := newTestService(t)
	seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType: "flyer",
		Quantity:    1000,
		Price:       20000,
	})

	estimate, err := svc.CalculateEstimate(EstimateRequest{
		ProductType: "flyer",
		Quantity:    1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Цена тиража итоговая: 20000, а не 20000*1000
	if estimate.EstimatedPrice != 20000 {
		t.Errorf("expected tier total 20000, got %d", estimate.EstimatedPrice)
	}
}

func TestCalculateEstimateNoMatchingEntry(t *testing.T) {
	svc, _ := newTestService(t)
	seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType: "business_card",
		Quantity:    100,
		Price:       5000,
	})

	_, err := svc.CalculateEstimate(EstimateRequest{
		ProductType: "business_card",
		Quantity:    250, // такого тиража нет
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCalculateEstimateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CalculateEstimate(EstimateRequest{Quantity: 100}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty product type, got %v", err)
	}
	if _, err := svc.CalculateEstimate(EstimateRequest{ProductType: "flyer"}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero quantity, got %v", err)
	}
	if _, err := svc.CalculateEstimate(EstimateRequest{ProductType: "flyer", Quantity: -5}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for negative quantity, got %v", err)
	}
}

func TestCalculateEstimateSpecificationsMatch(t *testing.T) {
	svc, _ := newTestService(t)

	// Позиция со спецификацией и позиция без нее
	plain := seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType: "business_card",
		Quantity:    100,
		Price:       5000,
	})
	glossy := seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType:    "business_card",
		Quantity:       100,
		Price:          7000,
		Specifications: map[string]interface{}{"paper": "glossy"},
	})

	// Без спецификации фильтра по ней нет: выигрывает позиция с меньшим id
	estimate, err := svc.CalculateEstimate(EstimateRequest{
		ProductType: "business_card",
		Quantity:    100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if estimate.PriceTableID != plain.ID && estimate.PriceTableID != glossy.ID {
		t.Fatalf("estimate matched unknown entry %s", estimate.PriceTableID)
	}

	// Со спецификацией подбирается точное совпадение
	estimate, err = svc.CalculateEstimate(EstimateRequest{
		ProductType:    "business_card",
		Quantity:       100,
		Specifications: map[string]interface{}{"paper": "glossy"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if estimate.PriceTableID != glossy.ID {
		t.Errorf("expected glossy entry %s, got %s", glossy.ID, estimate.PriceTableID)
	}
	if estimate.EstimatedPrice != 7000 {
		t.Errorf("expected 7000, got %d", estimate.EstimatedPrice)
	}
}
