package database

import (
	"github.com/Wjpayne/Inventory-Management/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is assigned a postgres handle on startup; tests swap in their own.
var DB *gorm.DB

func InitDatabase() error {
	db, err := gorm.Open(postgres.Open(config.Cfg.Database.URL), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = db
	return nil
}
