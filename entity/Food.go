package entity

import (
	"time"
)

type Food struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"` // minor currency unit

	Categories []Category `gorm:"many2many:category_food" json:"-"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
