package services

import (
	"time"

	"github.com/Atsuyko/restaurant/entity"
	"github.com/Atsuyko/restaurant/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

// CategoryUpdate is the partial-update set: only non-nil fields are
// applied to the loaded record.
type CategoryUpdate struct {
	Title *string `json:"title"`
}

func (s *CategoryService) Create(title string) (*entity.Category, error) {
	category := &entity.Category{
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	return s.Repo.FindByID(id)
}

func (s *CategoryService) Edit(category *entity.Category, upd CategoryUpdate) error {
	if upd.Title != nil {
		category.Title = *upd.Title
	}
	now := time.Now()
	category.UpdatedAt = &now
	return s.Repo.Update(category)
}

func (s *CategoryService) Delete(category *entity.Category) error {
	return s.Repo.Delete(category)
}
