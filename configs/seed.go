package configs

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Atsuyko/restaurant/entity"
	"github.com/google/uuid"
)

// SeedCatalog loads demo catalog data the way the original fixtures
// did: a restaurant with pictures, categories, foods, menus and the
// junction rows linking them. Skipped when the catalog is non-empty.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("catalog already seeded, skipping")
		return nil
	}

	now := time.Now()

	restaurant := entity.Restaurant{
		Name:        "Le Quai Antique",
		Description: "Cuisine savoyarde au bord du lac",
		MaxGuest:    60,
		CreatedAt:   now,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}

	for _, title := range []string{"Salle principale", "Terrasse", "Cuisine ouverte"} {
		picture := entity.Picture{
			Title:        title,
			Slug:         slugify(title),
			RestaurantID: restaurant.ID,
			CreatedAt:    now,
		}
		if err := db.Create(&picture).Error; err != nil {
			return err
		}
	}

	categories := []entity.Category{
		{Title: "Entrées", CreatedAt: now},
		{Title: "Plats", CreatedAt: now},
		{Title: "Desserts", CreatedAt: now},
	}
	foods := []entity.Food{
		{Title: "Croûte au fromage", Description: "Pain, vin blanc, fromage d'alpage", Price: 1450, CreatedAt: now},
		{Title: "Fondue savoyarde", Description: "Trois fromages, servie avec charcuterie", Price: 2200, CreatedAt: now},
		{Title: "Tarte aux myrtilles", Description: "Myrtilles sauvages, pâte sablée", Price: 850, CreatedAt: now},
	}
	menus := []entity.Menu{
		{Title: "Menu du marché", CreatedAt: now},
		{Title: "Menu dégustation", CreatedAt: now},
	}

	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}
	for i := range foods {
		if err := db.Create(&foods[i]).Error; err != nil {
			return err
		}
	}
	for i := range menus {
		if err := db.Create(&menus[i]).Error; err != nil {
			return err
		}
	}

	for i := range categories {
		if err := db.Create(&entity.CategoryFood{CategoryID: categories[i].ID, FoodID: foods[i].ID}).Error; err != nil {
			return err
		}
		if err := db.Create(&entity.CategoryMenu{CategoryID: categories[i].ID, MenuID: menus[i%len(menus)].ID}).Error; err != nil {
			return err
		}
	}

	log.Println("catalog seeded")
	return nil
}

func slugify(title string) string {
	s := strings.ToLower(strings.Join(strings.Fields(title), "-"))
	return fmt.Sprintf("%s-%s", s, uuid.NewString()[:8])
}
