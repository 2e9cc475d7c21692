package config

import (
	"log"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"gorm.io/gorm"
)

var seedTables = []models.Table{
	{Number: 1, Capacity: 2},
	{Number: 2, Capacity: 2},
	{Number: 3, Capacity: 4},
	{Number: 4, Capacity: 4},
	{Number: 5, Capacity: 6},
	{Number: 6, Capacity: 6},
	{Number: 7, Capacity: 8},
	{Number: 8, Capacity: 4},
}

var seedCategories = []models.Category{
	{Name: "Drinks", Slug: "drinks", Emoji: "☕", SortOrder: 1},
	{Name: "Appetizers", Slug: "appetizers", Emoji: "🥗", SortOrder: 2},
	{Name: "Main Course", Slug: "main_course", Emoji: "🍽️", SortOrder: 3},
	{Name: "Desserts", Slug: "desserts", Emoji: "🍰", SortOrder: 4},
	{Name: "Sides", Slug: "sides", Emoji: "🍟", SortOrder: 5},
}

var seedMenu = []models.MenuItem{
	{Name: "Espresso", Description: "Rich and bold single shot", Price: 3.50, Category: "drinks"},
	{Name: "Cappuccino", Description: "Espresso with steamed milk and foam", Price: 4.50, Category: "drinks"},
	{Name: "Latte", Description: "Smooth espresso with velvety milk", Price: 5.00, Category: "drinks"},
	{Name: "Fresh Orange Juice", Description: "Freshly squeezed oranges", Price: 4.00, Category: "drinks"},
	{Name: "Iced Tea", Description: "Refreshing house-made iced tea", Price: 3.00, Category: "drinks"},
	{Name: "Bruschetta", Description: "Toasted bread with tomatoes and basil", Price: 8.00, Category: "appetizers"},
	{Name: "Soup of the Day", Description: "Ask your server for today's selection", Price: 6.50, Category: "appetizers"},
	{Name: "Caesar Salad", Description: "Crisp romaine with parmesan and croutons", Price: 9.00, Category: "appetizers"},
	{Name: "Garlic Bread", Description: "Warm bread with garlic butter", Price: 5.00, Category: "appetizers"},
	{Name: "Grilled Salmon", Description: "Atlantic salmon with lemon herb butter", Price: 22.00, Category: "main_course"},
	{Name: "Chicken Parmesan", Description: "Breaded chicken with marinara and mozzarella", Price: 18.00, Category: "main_course"},
	{Name: "Beef Burger", Description: "Angus beef with lettuce, tomato, and special sauce", Price: 15.00, Category: "main_course"},
	{Name: "Pasta Carbonara", Description: "Creamy pasta with bacon and parmesan", Price: 16.00, Category: "main_course"},
	{Name: "Vegetable Stir Fry", Description: "Fresh seasonal vegetables in savory sauce", Price: 14.00, Category: "main_course"},
	{Name: "Tiramisu", Description: "Classic Italian coffee dessert", Price: 8.00, Category: "desserts"},
	{Name: "Chocolate Lava Cake", Description: "Warm cake with molten chocolate center", Price: 9.00, Category: "desserts"},
	{Name: "Cheesecake", Description: "New York style with berry compote", Price: 7.50, Category: "desserts"},
	{Name: "Ice Cream", Description: "Three scoops of your choice", Price: 6.00, Category: "desserts"},
	{Name: "French Fries", Description: "Crispy golden fries", Price: 4.50, Category: "sides"},
	{Name: "Mashed Potatoes", Description: "Creamy buttery potatoes", Price: 4.00, Category: "sides"},
	{Name: "Grilled Vegetables", Description: "Seasonal vegetables", Price: 5.00, Category: "sides"},
}

// SeedDatabase fills empty tables, categories and menu with starter data.
// Each group is only seeded when it has no rows yet.
func SeedDatabase(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedIfEmpty(tx, &models.Table{}, cloneTables()); err != nil {
			return err
		}
		if err := seedIfEmpty(tx, &models.Category{}, cloneCategories()); err != nil {
			return err
		}
		return seedIfEmpty(tx, &models.MenuItem{}, cloneMenu())
	})
}

func seedIfEmpty(tx *gorm.DB, model interface{ TableName() string }, rows interface{}) error {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := tx.Create(rows).Error; err != nil {
		return err
	}
	log.Printf("Initial %s created", model.TableName())
	return nil
}

func cloneTables() []models.Table {
	rows := make([]models.Table, len(seedTables))
	copy(rows, seedTables)
	for i := range rows {
		rows[i].Status = models.TableStatusAvailable
	}
	return rows
}

func cloneCategories() []models.Category {
	rows := make([]models.Category, len(seedCategories))
	copy(rows, seedCategories)
	return rows
}

func cloneMenu() []models.MenuItem {
	rows := make([]models.MenuItem, len(seedMenu))
	copy(rows, seedMenu)
	for i := range rows {
		rows[i].Available = true
	}
	return rows
}
