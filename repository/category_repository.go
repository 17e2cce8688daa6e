package repository

import (
	"github.com/Atsuyko/restaurant/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.DB.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) Update(category *entity.Category) error {
	return r.DB.Save(category).Error
}

// Delete removes the category and its junction rows in one
// transaction. The linked foods and menus themselves are untouched.
func (r *CategoryRepository) Delete(category *entity.Category) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&entity.CategoryFood{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&entity.CategoryMenu{}).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
}

// LinkFood and LinkMenu create junction rows; used by fixtures and
// association maintenance.
func (r *CategoryRepository) LinkFood(categoryID, foodID uint) error {
	return r.DB.Create(&entity.CategoryFood{CategoryID: categoryID, FoodID: foodID}).Error
}

func (r *CategoryRepository) LinkMenu(categoryID, menuID uint) error {
	return r.DB.Create(&entity.CategoryMenu{CategoryID: categoryID, MenuID: menuID}).Error
}
