package entity

// PriceVariant is one standard price point of a package (e.g. "1:1",
// "group of 3").
type PriceVariant struct {
	Label      string `json:"label"`
	PriceCents int64  `json:"price_cents"`
}

// CoursePackage is a sellable bundle from the sales catalog.
type CoursePackage struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Courses     []string       `json:"courses,omitempty"`
	Variants    []PriceVariant `json:"variants"`
}

// SalesCatalog is the single document powering the quote builder.
type SalesCatalog struct {
	Packages []CoursePackage `json:"packages"`
}
