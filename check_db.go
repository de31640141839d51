package main

import (
	"fmt"
	"log"

	"backend/internal/app/ds"
	"backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Отладочный скрипт: выводит содержимое прайс-листа из базы
func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var entries []ds.PriceTable
	err = db.Order("product_type, quantity").Find(&entries).Error
	if err != nil {
		log.Fatal("Failed to get price tables:", err)
	}

	fmt.Println("Price tables in database:")
	for _, entry := range entries {
		spec := "NULL"
		if entry.Specifications != nil {
			spec = *entry.Specifications
		}
		fmt.Printf("ID: %s, Product: %s, Qty: %d, Price: %d, DesignFee: %d (included: %v), Spec: %s, Days: %d\n",
			entry.ID, entry.ProductType, entry.Quantity, entry.Price, entry.DesignFee, entry.DesignFeeIncluded, spec, entry.DeliveryDays)
	}
}
