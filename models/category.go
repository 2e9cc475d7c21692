package models

// Category groups menu items. Menu items reference a category by its slug.
type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Emoji     string `gorm:"not null;default:''" json:"emoji"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
