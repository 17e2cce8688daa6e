package repository

import (
	"github.com/Atsuyko/restaurant/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

// Delete removes the menu and its category_menu junction rows.
func (r *MenuRepository) Delete(menu *entity.Menu) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&entity.CategoryMenu{}).Error; err != nil {
			return err
		}
		return tx.Delete(menu).Error
	})
}
