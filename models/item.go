package models

import (
	"errors"

	"github.com/Wjpayne/Inventory-Management/database"
	"gorm.io/gorm"
)

// ErrItemNotFound is returned when an update targets an id with no record.
var ErrItemNotFound = errors.New("item not found")

type Item struct {
	ID       uint    `gorm:"primary_key" autoIncrement:"true" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Quantity float64 `gorm:"not null" json:"quantity"`
	Unit     string  `gorm:"not null" json:"unit"`
}

// ItemFields carries the replaceable fields of an item; the id never changes.
type ItemFields struct {
	Name     string
	Quantity float64
	Unit     string
}

func ListItems() ([]Item, error) {
	items := []Item{}
	if res := database.DB.Order("id").Find(&items); res.Error != nil {
		return nil, res.Error
	}
	return items, nil
}

func (item *Item) CreateItem() error {
	if res := database.DB.Create(item); res.Error != nil {
		return res.Error
	}
	return nil
}

func UpdateItem(id uint, fields ItemFields) (Item, error) {
	var item Item
	if res := database.DB.First(&item, id); res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}
		return Item{}, res.Error
	}
	item.Name = fields.Name
	item.Quantity = fields.Quantity
	item.Unit = fields.Unit
	if res := database.DB.Save(&item); res.Error != nil {
		return Item{}, res.Error
	}
	return item, nil
}

// DeleteItem removes the record matching id; an absent id is a no-op.
func DeleteItem(id uint) error {
	if res := database.DB.Delete(&Item{}, id); res.Error != nil {
		return res.Error
	}
	return nil
}
