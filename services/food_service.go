package services

import (
	"time"

	"github.com/Atsuyko/restaurant/entity"
	"github.com/Atsuyko/restaurant/repository"
)

type FoodService struct {
	Repo *repository.FoodRepository
}

func NewFoodService(repo *repository.FoodRepository) *FoodService {
	return &FoodService{Repo: repo}
}

type FoodUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
}

func (s *FoodService) Create(title, description string, price int) (*entity.Food, error) {
	food := &entity.Food{
		Title:       title,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Get(id uint) (*entity.Food, error) {
	return s.Repo.FindByID(id)
}

func (s *FoodService) Edit(food *entity.Food, upd FoodUpdate) error {
	if upd.Title != nil {
		food.Title = *upd.Title
	}
	if upd.Description != nil {
		food.Description = *upd.Description
	}
	if upd.Price != nil {
		food.Price = *upd.Price
	}
	now := time.Now()
	food.UpdatedAt = &now
	return s.Repo.Update(food)
}

func (s *FoodService) Delete(food *entity.Food) error {
	return s.Repo.Delete(food)
}
