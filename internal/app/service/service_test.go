package service

import (
	"fmt"
	"testing"
	"time"

	"backend/internal/app/cache"
	"backend/internal/app/ds"
	"backend/internal/app/notify"
	"backend/internal/app/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestService поднимает сервис на sqlite in-memory
func newTestService(t *testing.T) (*PrintOrderService, *repository.Repository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	repo, err := repository.NewWithDB(db)
	if err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}

	svc := NewPrintOrderService(repo, cache.New(time.Minute, 10), notify.NewLogNotifier())
	return svc, repo
}

func seedPriceTable(t *testing.T, svc *PrintOrderService, in CreatePriceTableInput) *ds.PriceTable {
	t.Helper()

	entry, err := svc.CreatePriceTable(in)
	if err != nil {
		t.Fatalf("failed to seed price table: %v", err)
	}
	return entry
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
