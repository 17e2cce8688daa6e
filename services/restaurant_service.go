package services

import (
	"time"

	"github.com/Atsuyko/restaurant/entity"
	"github.com/Atsuyko/restaurant/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type RestaurantUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MaxGuest    *int    `json:"maxGuest"`
}

func (s *RestaurantService) Create(name, description string, maxGuest int) (*entity.Restaurant, error) {
	restaurant := &entity.Restaurant{
		Name:        name,
		Description: description,
		MaxGuest:    maxGuest,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	return s.Repo.FindByID(id)
}

func (s *RestaurantService) Edit(restaurant *entity.Restaurant, upd RestaurantUpdate) error {
	if upd.Name != nil {
		restaurant.Name = *upd.Name
	}
	if upd.Description != nil {
		restaurant.Description = *upd.Description
	}
	if upd.MaxGuest != nil {
		restaurant.MaxGuest = *upd.MaxGuest
	}
	now := time.Now()
	restaurant.UpdatedAt = &now
	return s.Repo.Update(restaurant)
}

func (s *RestaurantService) Delete(restaurant *entity.Restaurant) error {
	return s.Repo.Delete(restaurant)
}
