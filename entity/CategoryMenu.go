package entity

// CategoryMenu is the category<->menu junction row.
type CategoryMenu struct {
	CategoryID uint `gorm:"primaryKey" json:"categoryId"`
	MenuID     uint `gorm:"primaryKey" json:"menuId"`
}

func (CategoryMenu) TableName() string { return "category_menu" }
