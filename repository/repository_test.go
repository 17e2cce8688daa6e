package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Atsuyko/restaurant/configs"
	"github.com/Atsuyko/restaurant/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := configs.OpenDB(dsn)
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func TestCategoryDeleteClearsJunctions(t *testing.T) {
	db := testDB(t)
	categories := NewCategoryRepository(db)
	foods := NewFoodRepository(db)
	menus := NewMenuRepository(db)

	now := time.Now()
	category := &entity.Category{Title: "Plats", CreatedAt: now}
	require.NoError(t, categories.Create(category))

	var linkedFoods []entity.Food
	for i := 0; i < 3; i++ {
		food := entity.Food{Title: fmt.Sprintf("plat %d", i), Price: 1000 + i, CreatedAt: now}
		require.NoError(t, foods.Create(&food))
		require.NoError(t, categories.LinkFood(category.ID, food.ID))
		linkedFoods = append(linkedFoods, food)
	}
	menu := &entity.Menu{Title: "Menu", CreatedAt: now}
	require.NoError(t, menus.Create(menu))
	require.NoError(t, categories.LinkMenu(category.ID, menu.ID))

	require.NoError(t, categories.Delete(category))

	var count int64
	db.Model(&entity.CategoryFood{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&entity.CategoryMenu{}).Count(&count)
	assert.Zero(t, count)

	// the foods and the menu are untouched
	for _, f := range linkedFoods {
		_, err := foods.FindByID(f.ID)
		assert.NoError(t, err)
	}
	_, err := menus.FindByID(menu.ID)
	assert.NoError(t, err)

	_, err = categories.FindByID(category.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFoodDeleteClearsOnlyItsJunctions(t *testing.T) {
	db := testDB(t)
	categories := NewCategoryRepository(db)
	foods := NewFoodRepository(db)

	now := time.Now()
	category := &entity.Category{Title: "Entrées", CreatedAt: now}
	require.NoError(t, categories.Create(category))

	kept := entity.Food{Title: "kept", CreatedAt: now}
	doomed := entity.Food{Title: "doomed", CreatedAt: now}
	require.NoError(t, foods.Create(&kept))
	require.NoError(t, foods.Create(&doomed))
	require.NoError(t, categories.LinkFood(category.ID, kept.ID))
	require.NoError(t, categories.LinkFood(category.ID, doomed.ID))

	require.NoError(t, foods.Delete(&doomed))

	var rows []entity.CategoryFood
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, kept.ID, rows[0].FoodID)

	// the category side survives
	_, err := categories.FindByID(category.ID)
	assert.NoError(t, err)
}

func TestRestaurantDeleteRemovesOwnedPictures(t *testing.T) {
	db := testDB(t)
	restaurants := NewRestaurantRepository(db)
	pictures := NewPictureRepository(db)

	now := time.Now()
	restaurant := &entity.Restaurant{Name: "Le Quai", MaxGuest: 40, CreatedAt: now}
	require.NoError(t, restaurants.Create(restaurant))

	for i := 0; i < 2; i++ {
		pic := entity.Picture{
			Title:        fmt.Sprintf("salle %d", i),
			Slug:         fmt.Sprintf("salle-%d", i),
			RestaurantID: restaurant.ID,
			CreatedAt:    now,
		}
		require.NoError(t, pictures.Create(&pic))
	}

	require.NoError(t, restaurants.Delete(restaurant))

	remaining, err := pictures.FindByRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestUserRepositoryLookups(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)

	user := &entity.User{
		Email:     "double@example.com",
		Password:  "not-a-real-hash",
		ApiToken:  "token-abc",
		Roles:     []string{entity.RoleUser},
		CreatedAt: time.Now(),
	}
	require.NoError(t, users.Create(user))

	byToken, err := users.FindByToken("token-abc")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byToken.ID)

	count, err := users.CountByEmail("double@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// the unique index rejects a second row with the same email
	dup := &entity.User{Email: "double@example.com", ApiToken: "token-other", CreatedAt: time.Now()}
	assert.Error(t, users.Create(dup))
}
