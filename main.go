package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"

	"github.com/Wjpayne/Inventory-Management/config"
	"github.com/Wjpayne/Inventory-Management/controllers"
	"github.com/Wjpayne/Inventory-Management/database"
	"github.com/Wjpayne/Inventory-Management/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func initRouter(r *gin.Engine) {

	r.GET("/healthcheck", func(c *gin.Context) {})
	r.GET("/items", controllers.ListItems)
	r.POST("/items", controllers.CreateItem)
	r.PUT("/items/:id", controllers.UpdateItem)
	r.DELETE("/items/:id", controllers.DeleteItem)
}

func MigrateDB() error {
	if err := database.DB.AutoMigrate(&models.Item{}); err != nil {
		return err
	}
	return nil
}

// LoadItems fills an empty store from the seed file, if one is configured.
func LoadItems() error {
	if config.Cfg.Seed.File == "" {
		return nil
	}
	var count int64
	if err := database.DB.Model(&models.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	content, readErr := ioutil.ReadFile(config.Cfg.Seed.File)
	if readErr != nil {
		return readErr
	}
	var items []models.Item
	if err := json.Unmarshal(content, &items); err != nil {
		return err
	}
	for _, item := range items {
		item.ID = 0
		if err := item.CreateItem(); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d items from %s", len(items), config.Cfg.Seed.File)
	return nil
}

func main() {
	config.Cfg.Init()
	if err := database.InitDatabase(); err != nil {
		panic(err)
	}
	if err := MigrateDB(); err != nil {
		panic(err)
	}
	if err := LoadItems(); err != nil {
		panic(err)
	}
	r := gin.Default()
	r.Use(cors.Default())
	initRouter(r)

	if err := r.Run(fmt.Sprintf(":%s", config.Cfg.Server.Port)); err != nil {
		panic("[Error] failed to start Gin server due to: " + err.Error())
	}
}
