package configs

import (
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account if none exists for the
// configured email.
func SeedAdmin(db *gorm.DB, cfg *Config, log *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("admin already exists", zap.String("email", cfg.AdminEmail))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
		Verified: true,
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the status and category lookup rows.
func SeedLookups(db *gorm.DB, log *zap.Logger) error {
	// Cafe
	db.FirstOrCreate(&entity.CafeStatus{}, entity.CafeStatus{StatusName: "Open"})
	db.FirstOrCreate(&entity.CafeStatus{}, entity.CafeStatus{StatusName: "Closed"})
	db.FirstOrCreate(&entity.CafeCategory{}, entity.CafeCategory{CategoryName: "Coffee House"})
	db.FirstOrCreate(&entity.CafeCategory{}, entity.CafeCategory{CategoryName: "Bakery"})
	db.FirstOrCreate(&entity.CafeCategory{}, entity.CafeCategory{CategoryName: "Tea Room"})

	// Menu
	db.FirstOrCreate(&entity.MenuStatus{}, entity.MenuStatus{StatusName: "Available"})
	db.FirstOrCreate(&entity.MenuStatus{}, entity.MenuStatus{StatusName: "Out of Stock"})
	db.FirstOrCreate(&entity.MenuType{}, entity.MenuType{TypeName: "Drink"})
	db.FirstOrCreate(&entity.MenuType{}, entity.MenuType{TypeName: "Snack"})
	db.FirstOrCreate(&entity.MenuType{}, entity.MenuType{TypeName: "Main Dish"})
	db.FirstOrCreate(&entity.MenuType{}, entity.MenuType{TypeName: "Dessert"})

	// Order
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Placed"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Preparing"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Ready"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Completed"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Cancelled"})

	log.Info("lookup tables seeded")
	return nil
}
