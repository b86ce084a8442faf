package catalog

// Review is a customer review embedded in a product.
type Review struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	UserName string  `json:"userName"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	Date     string  `json:"date"`
}

// Product is a catalog entry. The catalog is read-only from the rest of the
// system's perspective; repositories hand out copies.
type Product struct {
	ID              string   `json:"id" gorm:"primaryKey"`
	Name            string   `json:"name" gorm:"index"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        string   `json:"category" gorm:"index"`
	Sport           string   `json:"sport" gorm:"index"`
	ImageURL        string   `json:"imageUrl"`
	Stock           int      `json:"stock"`
	Rating          float64  `json:"rating"`
	Reviews         []Review `json:"reviews" gorm:"serializer:json"`
	RelatedProducts []string `json:"relatedProducts,omitempty" gorm:"serializer:json"`
}

// Filters narrows a catalog listing. Category matches either the product
// category or its sport; Search matches name and description substrings.
// Both are case-insensitive.
type Filters struct {
	Category string
	Search   string
}
