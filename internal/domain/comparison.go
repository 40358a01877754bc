package domain

// Side tags identify which product a derived comparison field refers to.
const (
	SideProductA = "product_a"
	SideProductB = "product_b"
)

// ComparisonResult is the structured comparison derived from two
// ProductRecords. It is constructed once per comparison and never mutated;
// the narrative composer and the recommendation engine both consume it.
type ComparisonResult struct {
	ProductAName string `json:"product_a_name"`
	ProductBName string `json:"product_b_name"`

	// Price comparison. Prices are extracted integers; PriceDiff is their
	// absolute difference. CheaperProduct is a product name, BetterPrice a
	// side tag. Equal prices resolve to product B.
	PriceA         int    `json:"price_a"`
	PriceB         int    `json:"price_b"`
	PriceDiff      int    `json:"price_diff"`
	CheaperProduct string `json:"cheaper_product"`
	BetterPrice    string `json:"better_price"`

	// Concentration comparison. Values are parsed from the leading portion
	// of each concentration string; parse failure on either side zeroes both.
	// Equal concentrations resolve to product B.
	ConcentrationA      int    `json:"concentration_a"`
	ConcentrationB      int    `json:"concentration_b"`
	ConcentrationDiff   string `json:"concentration_diff"`
	HigherConcentration string `json:"higher_concentration"`

	// Skin type analysis. SkinTypeMatch is one of the fixed overlap labels.
	SkinTypeA     string `json:"skin_type_a"`
	SkinTypeB     string `json:"skin_type_b"`
	SkinTypeMatch string `json:"skin_type_match"`

	// Ingredient analysis. IngredientSimilarity is one of the fixed
	// Jaccard-threshold labels.
	IngredientsA         string `json:"ingredients_a"`
	IngredientsB         string `json:"ingredients_b"`
	IngredientSimilarity string `json:"ingredient_similarity"`

	// MoreVersatile is a side tag for the product with broader skin type
	// coverage.
	MoreVersatile string `json:"more_versatile"`
}

// RecommendationSet maps buying scenarios to a product name, or to a
// "both suitable" sentinel when neither product stands out. It is stateless
// and recomputed for each comparison request.
type RecommendationSet struct {
	ForOilySkin        string `json:"for_oily_skin"`
	ForSensitiveSkin   string `json:"for_sensitive_skin"`
	ForBudgetConscious string `json:"for_budget_conscious"`
	ForMaximumResults  string `json:"for_maximum_results"`
}
