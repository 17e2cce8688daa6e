package repository

import (
	"github.com/Atsuyko/restaurant/entity"
	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) FindByID(id uint) (*entity.Food, error) {
	var food entity.Food
	if err := r.DB.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Create(food *entity.Food) error {
	return r.DB.Create(food).Error
}

func (r *FoodRepository) Update(food *entity.Food) error {
	return r.DB.Save(food).Error
}

// Delete removes the food and its category_food junction rows.
func (r *FoodRepository) Delete(food *entity.Food) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", food.ID).Delete(&entity.CategoryFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(food).Error
	})
}
