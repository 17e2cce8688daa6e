package repository

import (
	"github.com/Atsuyko/restaurant/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := r.DB.First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Create(restaurant *entity.Restaurant) error {
	return r.DB.Create(restaurant).Error
}

func (r *RestaurantRepository) Update(restaurant *entity.Restaurant) error {
	return r.DB.Save(restaurant).Error
}

// Delete removes the restaurant and the pictures it owns.
func (r *RestaurantRepository) Delete(restaurant *entity.Restaurant) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&entity.Picture{}).Error; err != nil {
			return err
		}
		return tx.Delete(restaurant).Error
	})
}
