package entity

import (
	"time"
)

type Picture struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
}
