package configs

import (
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.CafeCategory{}, &entity.CafeStatus{}, &entity.Cafe{},
		&entity.MenuType{}, &entity.MenuStatus{}, &entity.Menu{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
		&entity.Wallet{}, &entity.WalletTransaction{},
		&entity.MealPlan{}, &entity.MealPlanItem{},
		&entity.KVRecord{},
	)
}
