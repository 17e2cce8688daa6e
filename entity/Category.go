package entity

import (
	"time"
)

type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `json:"title"`

	Foods []Food `gorm:"many2many:category_food" json:"-"`
	Menus []Menu `gorm:"many2many:category_menu" json:"-"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
