package configs

import (
	"github.com/Atsuyko/restaurant/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) error {
	database, err := OpenDB(source)
	if err != nil {
		return err
	}
	db = database
	return nil
}

func OpenDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
}

func SetupDatabase() error {
	return Migrate(db)
}

// Migrate registers the two junction join models and migrates the
// schema. The join models carry composite primary keys so cascade
// cleanup can address category_food / category_menu rows directly.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entity.Category{}, "Foods", &entity.CategoryFood{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&entity.Category{}, "Menus", &entity.CategoryMenu{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&entity.Food{}, "Categories", &entity.CategoryFood{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&entity.Menu{}, "Categories", &entity.CategoryMenu{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Picture{},
		&entity.Category{}, &entity.Food{}, &entity.Menu{},
	)
}
