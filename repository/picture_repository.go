package repository

import (
	"github.com/Atsuyko/restaurant/entity"
	"gorm.io/gorm"
)

type PictureRepository struct {
	DB *gorm.DB
}

func NewPictureRepository(db *gorm.DB) *PictureRepository {
	return &PictureRepository{DB: db}
}

func (r *PictureRepository) FindByID(id uint) (*entity.Picture, error) {
	var picture entity.Picture
	if err := r.DB.First(&picture, id).Error; err != nil {
		return nil, err
	}
	return &picture, nil
}

func (r *PictureRepository) FindByRestaurant(restaurantID uint) ([]entity.Picture, error) {
	var pictures []entity.Picture
	err := r.DB.Where("restaurant_id = ?", restaurantID).Find(&pictures).Error
	return pictures, err
}

func (r *PictureRepository) Create(picture *entity.Picture) error {
	return r.DB.Create(picture).Error
}

func (r *PictureRepository) Delete(picture *entity.Picture) error {
	return r.DB.Delete(picture).Error
}
