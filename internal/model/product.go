package model

import "time"

// Product categories on the menu.
const (
	CategoryPideh   = "pideh"
	CategoryCombo   = "combo"
	CategorySnack   = "snack"
	CategoryDrink   = "drink"
	CategorySauce   = "sauce"
	CategoryDessert = "dessert"
)

// Categories lists the valid product categories.
var Categories = []string{
	CategoryPideh,
	CategoryCombo,
	CategorySnack,
	CategoryDrink,
	CategorySauce,
	CategoryDessert,
}

// ValidCategory reports whether c is a known product category.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Product represents a menu item in the catalogue.
// Prices are whole Armenian drams.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       int       `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	Image       string    `json:"image,omitempty" db:"image"`
	Ingredients []string  `json:"ingredients" db:"ingredients"`
	IsAvailable bool      `json:"isAvailable" db:"is_available"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
