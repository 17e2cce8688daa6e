package entity

// CategoryFood is the category<->food junction row. Registered as an
// explicit join model so delete-time cleanup can target the table
// directly.
type CategoryFood struct {
	CategoryID uint `gorm:"primaryKey" json:"categoryId"`
	FoodID     uint `gorm:"primaryKey" json:"foodId"`
}

func (CategoryFood) TableName() string { return "category_food" }
