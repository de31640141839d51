package main

import (
	"log"

	"backend/internal/app/ds"
	"backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Миграция схемы и начальное наполнение прайс-листа
func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	err = db.AutoMigrate(
		&ds.User{},
		&ds.PriceTable{},
		&ds.PrintOrder{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	seedPriceTables(db)

	log.Println("Migration completed")
}

// seedPriceTables наполняет прайс-лист стартовыми позициями.
// Существующие записи не трогаем, сидируем только пустую таблицу.
func seedPriceTables(db *gorm.DB) {
	var count int64
	if err := db.Model(&ds.PriceTable{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to check price tables: ", err)
	}
	if count > 0 {
		log.Println("Price tables already seeded, skipping")
		return
	}

	entries := []ds.PriceTable{
		{ProductType: "business_card", Quantity: 100, Price: 5000, DesignFee: 1000, DesignFeeIncluded: false, DeliveryDays: 7},
		{ProductType: "business_card", Quantity: 500, Price: 12000, DesignFee: 1000, DesignFeeIncluded: false, DeliveryDays: 7},
		{ProductType: "appointment_card", Quantity: 500, Price: 8000, DesignFee: 2000, DesignFeeIncluded: false, DeliveryDays: 10},
		{ProductType: "appointment_card", Quantity: 1000, Price: 13000, DesignFee: 2000, DesignFeeIncluded: false, DeliveryDays: 10},
		{ProductType: "envelope", Quantity: 500, Price: 15000, DesignFee: 3000, DesignFeeIncluded: true, DeliveryDays: 14},
		{ProductType: "flyer", Quantity: 1000, Price: 20000, DesignFee: 5000, DesignFeeIncluded: false, DeliveryDays: 14},
		{ProductType: "brochure", Quantity: 500, Price: 45000, DesignFee: 10000, DesignFeeIncluded: false, DeliveryDays: 21},
	}

	if err := db.Create(&entries).Error; err != nil {
		log.Fatal("Failed to seed price tables: ", err)
	}

	log.Printf("Seeded %d price table entries", len(entries))
}
