// Package entity contains the core business objects of the project.
package entity

// Category identifies the kind of produce a product belongs to.
// Products and saved searches share the same fixed enumeration; the "all"
// wildcard is only meaningful on a saved search, never on a product.
type Category string

const (
	// CategoryAll is the search-only wildcard matching every product category.
	CategoryAll Category = "all"
	// CategoryFruits covers fresh fruit.
	CategoryFruits Category = "Fruits"
	// CategoryLegumes covers fresh vegetables.
	CategoryLegumes Category = "Légumes"
	// CategoryHerbes covers aromatic and culinary herbs.
	CategoryHerbes Category = "Herbes"
	// CategoryOeufs covers eggs.
	CategoryOeufs Category = "Œufs"
	// CategoryMiel covers honey and hive products.
	CategoryMiel Category = "Miel"
	// CategoryProduitsLaitiers covers dairy products.
	CategoryProduitsLaitiers Category = "Produits laitiers"
	// CategoryViandes covers meat and poultry.
	CategoryViandes Category = "Viandes"
	// CategoryCereales covers grains and flours.
	CategoryCereales Category = "Céréales"
	// CategoryConserves covers preserves, jams and canned goods.
	CategoryConserves Category = "Conserves"
	// CategoryAutres covers everything that fits no other category.
	CategoryAutres Category = "Autres"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValidForProduct checks if the Category may be set on a product.
// The "all" wildcard is rejected here.
func (c Category) IsValidForProduct() bool {
	switch c {
	case CategoryFruits, CategoryLegumes, CategoryHerbes, CategoryOeufs,
		CategoryMiel, CategoryProduitsLaitiers, CategoryViandes,
		CategoryCereales, CategoryConserves, CategoryAutres:
		return true
	default:
		return false
	}
}

// IsValidForSearch checks if the Category may be set on a saved search.
// An empty category is normalized to the wildcard by the search service.
func (c Category) IsValidForSearch() bool {
	return c == CategoryAll || c.IsValidForProduct()
}

// Matches reports whether a search category accepts a product category.
// The wildcard and the empty value accept everything.
func (c Category) Matches(product Category) bool {
	return c == CategoryAll || c == "" || c == product
}
