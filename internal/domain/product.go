package domain

// ProductRecord holds the normalized attributes of a single skincare product.
// Every field is a plain string; callers must supply empty strings rather
// than omitting fields. Free-form fields (price, concentration) are parsed
// best-effort by the comparison engine, never validated here.
type ProductRecord struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Concentration  string `json:"concentration"`
	SkinType       string `json:"skin_type"`
	KeyIngredients string `json:"key_ingredients"`
	Benefits       string `json:"benefits"`
	HowToUse       string `json:"how_to_use"`
	SideEffects    string `json:"side_effects"`
	Price          string `json:"price"`
}

// ProductSummary is the trimmed-down product view embedded in generated pages.
type ProductSummary struct {
	Name          string `json:"name"`
	Concentration string `json:"concentration"`
	SkinType      string `json:"skin_type"`
	Ingredients   string `json:"ingredients"`
	Benefits      string `json:"benefits"`
	Price         string `json:"price"`
}

// Summary converts a full record to its page-embeddable form.
func (p ProductRecord) Summary() ProductSummary {
	return ProductSummary{
		Name:          p.Name,
		Concentration: p.Concentration,
		SkinType:      p.SkinType,
		Ingredients:   p.KeyIngredients,
		Benefits:      p.Benefits,
		Price:         p.Price,
	}
}
