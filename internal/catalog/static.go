package catalog

import "github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"

// StaticMenu returns the built-in menu used when neither the scraped dumps
// on S3 nor a local menu file can be loaded. Prices are whole drams.
func StaticMenu() []model.Product {
	return []model.Product{
		{
			ID:          "pideh-classic",
			Name:        "Classic Pideh",
			Price:       1950,
			Category:    model.CategoryPideh,
			Image:       "/images/products/pideh-classic.jpg",
			Ingredients: []string{"dough", "beef", "tomato", "onion", "spices"},
			IsAvailable: true,
		},
		{
			ID:          "pideh-cheese",
			Name:        "Cheese Pideh",
			Price:       1800,
			Category:    model.CategoryPideh,
			Image:       "/images/products/pideh-cheese.jpg",
			Ingredients: []string{"dough", "lori cheese", "mozzarella", "butter"},
			IsAvailable: true,
		},
		{
			ID:          "pideh-spinach",
			Name:        "Spinach & Cheese Pideh",
			Price:       1900,
			Category:    model.CategoryPideh,
			Image:       "/images/products/pideh-spinach.jpg",
			Ingredients: []string{"dough", "spinach", "cheese", "egg"},
			IsAvailable: true,
		},
		{
			ID:          "pideh-mushroom",
			Name:        "Mushroom Pideh",
			Price:       2100,
			Category:    model.CategoryPideh,
			Image:       "/images/products/pideh-mushroom.jpg",
			Ingredients: []string{"dough", "mushrooms", "cheese", "cream", "herbs"},
			IsAvailable: true,
		},
		{
			ID:          "combo-family",
			Name:        "Family Combo",
			Price:       7500,
			Category:    model.CategoryCombo,
			Image:       "/images/products/combo-family.jpg",
			Ingredients: []string{"2 classic pideh", "cheese pideh", "fries", "4 drinks"},
			IsAvailable: true,
		},
		{
			ID:          "combo-duo",
			Name:        "Duo Combo",
			Price:       4200,
			Category:    model.CategoryCombo,
			Image:       "/images/products/combo-duo.jpg",
			Ingredients: []string{"2 pideh", "2 drinks"},
			IsAvailable: true,
		},
		{
			ID:          "snack-fries",
			Name:        "French Fries",
			Price:       950,
			Category:    model.CategorySnack,
			Image:       "/images/products/snack-fries.jpg",
			Ingredients: []string{"potato", "salt"},
			IsAvailable: true,
		},
		{
			ID:          "snack-nuggets",
			Name:        "Chicken Nuggets",
			Price:       1400,
			Category:    model.CategorySnack,
			Image:       "/images/products/snack-nuggets.jpg",
			Ingredients: []string{"chicken", "breading"},
			IsAvailable: true,
		},
		{
			ID:          "drink-cola",
			Name:        "Cola 0.5L",
			Price:       500,
			Category:    model.CategoryDrink,
			Image:       "/images/products/drink-cola.jpg",
			Ingredients: []string{},
			IsAvailable: true,
		},
		{
			ID:          "drink-tan",
			Name:        "Tan 0.5L",
			Price:       400,
			Category:    model.CategoryDrink,
			Image:       "/images/products/drink-tan.jpg",
			Ingredients: []string{"matsun", "water", "salt"},
			IsAvailable: true,
		},
		{
			ID:          "sauce-garlic",
			Name:        "Garlic Sauce",
			Price:       300,
			Category:    model.CategorySauce,
			Image:       "/images/products/sauce-garlic.jpg",
			Ingredients: []string{"garlic", "yogurt", "herbs"},
			IsAvailable: true,
		},
		{
			ID:          "sauce-spicy",
			Name:        "Spicy Adjika",
			Price:       300,
			Category:    model.CategorySauce,
			Image:       "/images/products/sauce-spicy.jpg",
			Ingredients: []string{"pepper", "tomato", "garlic"},
			IsAvailable: true,
		},
		{
			ID:          "dessert-gata",
			Name:        "Gata",
			Price:       800,
			Category:    model.CategoryDessert,
			Image:       "/images/products/dessert-gata.jpg",
			Ingredients: []string{"flour", "butter", "sugar", "vanilla"},
			IsAvailable: true,
		},
	}
}
