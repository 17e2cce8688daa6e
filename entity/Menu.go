package entity

import (
	"time"
)

// Menu is only an association target in this core: it has no HTTP
// surface of its own but participates in the category_menu junction.
type Menu struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `json:"title"`

	Categories []Category `gorm:"many2many:category_menu" json:"-"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
