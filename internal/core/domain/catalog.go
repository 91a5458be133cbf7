package domain

// DefaultCatalog returns the store's fixed product table.
// The alias lists are explicit and include each product's plural forms
// and common synonyms the voice pipeline should resolve.
func DefaultCatalog() Catalog {
	return NewCatalog([]Category{
		{
			Name:  "Fruits",
			Emoji: "🍎",
			Products: []Product{
				{ID: 1, Name: "Apple", Price: 1.5, Aliases: []string{"apples", "apple"}},
				{ID: 2, Name: "Mango", Price: 2.0, Aliases: []string{"mangoes", "mango"}},
				{ID: 3, Name: "Banana", Price: 1.0, Aliases: []string{"bananas", "banana"}},
				{ID: 4, Name: "Orange", Price: 1.3, Aliases: []string{"oranges", "orange"}},
				{ID: 5, Name: "Grapes", Price: 1.8, Aliases: []string{"grape", "grapes"}},
			},
		},
		{
			Name:  "Dairy",
			Emoji: "🥛",
			Products: []Product{
				{ID: 6, Name: "Milk", Price: 1.2, Aliases: []string{"milk", "dairy milk"}},
				{ID: 7, Name: "Cheese", Price: 2.5, Aliases: []string{"cheese", "cheddar"}},
				{ID: 8, Name: "Butter", Price: 2.0, Aliases: []string{"butter"}},
				{ID: 9, Name: "Yogurt", Price: 1.7, Aliases: []string{"yogurt", "yoghurt", "curd"}},
			},
		},
		{
			Name:  "Groceries",
			Emoji: "🌾",
			Products: []Product{
				{ID: 10, Name: "Sugar", Price: 0.8, Aliases: []string{"sugar"}},
				{ID: 11, Name: "Salt", Price: 0.5, Aliases: []string{"salt"}},
				{ID: 12, Name: "Rice", Price: 1.0, Aliases: []string{"rice"}},
				{ID: 13, Name: "Wheat Flour", Price: 1.1, Aliases: []string{"flour", "wheat flour", "atta"}},
				{ID: 14, Name: "Oil", Price: 2.3, Aliases: []string{"oil", "cooking oil"}},
			},
		},
		{
			Name:  "Beverages",
			Emoji: "☕",
			Products: []Product{
				{ID: 15, Name: "Tea", Price: 1.4, Aliases: []string{"tea", "chai"}},
				{ID: 16, Name: "Coffee", Price: 2.0, Aliases: []string{"coffee"}},
				{ID: 17, Name: "Juice", Price: 1.9, Aliases: []string{"juice", "fruit juice"}},
			},
		},
		{
			Name:  "Snacks",
			Emoji: "🍿",
			Products: []Product{
				{ID: 18, Name: "Biscuits", Price: 1.0, Aliases: []string{"biscuits", "biscuit", "cookies"}},
				{ID: 19, Name: "Chips", Price: 1.3, Aliases: []string{"chips", "crisps"}},
				{ID: 20, Name: "Popcorn", Price: 1.5, Aliases: []string{"popcorn"}},
			},
		},
	})
}
