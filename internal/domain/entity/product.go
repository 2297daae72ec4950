package entity

// Product is an immutable catalog entry. Prices are integer currency units;
// nothing mutates a Product after seed load.
type Product struct {
	ID          string        // Catalog identifier, unique across products.
	Name        LocalizedText // Display name per language.
	Description LocalizedText // Display description per language.
	Price       int           // Price in integer currency units.
	Calories    int           // Energy per serving.
	Proteins    int           // Grams of protein, zero when unknown.
	Fats        int           // Grams of fat, zero when unknown.
	Carbs       int           // Grams of carbohydrates, zero when unknown.
	CategoryID  string        // Owning category.
	Image       string        // Image reference for the presentation layer.
}

// CategoryAll is the sentinel category id that selects the whole catalog.
const CategoryAll = "all"

// Category groups products for the menu filter bar.
type Category struct {
	ID   string
	Name LocalizedText
	Icon string // Emoji glyph rendered on the filter chip.
}
