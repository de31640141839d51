package service

import (
	"errors"
	"testing"
)

func TestPriceTableCRUD(t *testing.T) {
	svc, _ := newTestService(t)

	entry := seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType: "brochure",
		Quantity:    500,
		Price:       45000,
		DesignFee:   10000,
	})
	if entry.ID == "" {
		t.Fatal("expected generated id")
	}
	if entry.DeliveryDays != 14 {
		t.Errorf("expected default delivery days 14, got %d", entry.DeliveryDays)
	}

	got, err := svc.GetPriceTable(entry.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Price != 45000 {
		t.Errorf("expected price 45000, got %d", got.Price)
	}

	newFee := 12000
	days := 21
	updated, err := svc.UpdatePriceTable(entry.ID, UpdatePriceTableInput{DesignFee: &newFee, DeliveryDays: &days})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DesignFee != 12000 || updated.DeliveryDays != 21 {
		t.Errorf("unexpected updated entry: %+v", updated)
	}

	if err := svc.DeletePriceTable(entry.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetPriceTable(entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPriceTableValidation(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreatePriceTable(CreatePriceTableInput{Quantity: 100, Price: 1000}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty product type, got %v", err)
	}
	if _, err := svc.CreatePriceTable(CreatePriceTableInput{ProductType: "flyer", Price: 1000}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero quantity, got %v", err)
	}
	if _, err := svc.CreatePriceTable(CreatePriceTableInput{ProductType: "flyer", Quantity: 100, Price: -1}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for negative price, got %v", err)
	}

	if _, err := svc.UpdatePriceTable("missing-id", UpdatePriceTableInput{Price: intPtr(100)}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown entry, got %v", err)
	}
	if err := svc.DeletePriceTable("missing-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown entry, got %v", err)
	}
}

// Список прайс-листа идет через кэш, запись инвалидирует его
func TestListPriceTablesCacheInvalidation(t *testing.T) {
	svc, _ := newTestService(t)

	seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType: "business_card",
		Quantity:    100,
		Price:       5000,
	})

	first, err := svc.ListPriceTables()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(first))
	}

	// Создание новой позиции сбрасывает кэш
	seedPriceTable(t, svc, CreatePriceTableInput{
		ProductType: "flyer",
		Quantity:    1000,
		Price:       20000,
	})

	second, err := svc.ListPriceTables()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 2 {
		t.Errorf("expected 2 entries after invalidation, got %d", len(second))
	}
}
