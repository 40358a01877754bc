package domain

// Question is a single generated customer question with its category.
type Question struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// FAQItem is an answered question on a FAQ page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// FAQPage is the generated FAQ payload persisted as faq.json.
type FAQPage struct {
	PageID         string    `json:"page_id"`
	PageType       string    `json:"page_type"`
	Title          string    `json:"title"`
	ProductName    string    `json:"product_name"`
	Questions      []FAQItem `json:"questions"`
	TotalQuestions int       `json:"total_questions"`
	GeneratedAt    string    `json:"generated_at"`
}

// Benefit is one product benefit with a short explanation.
type Benefit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Specifications lists the factual product attributes on a product page.
type Specifications struct {
	Concentration   string `json:"concentration"`
	SkinType        string `json:"skin_type"`
	KeyIngredients  string `json:"key_ingredients"`
	BenefitsSummary string `json:"benefits_summary"`
	Usage           string `json:"usage"`
	SideEffects     string `json:"side_effects"`
	Price           string `json:"price"`
}

// SafetyInfo groups the safety-related content on a product page.
type SafetyInfo struct {
	SideEffects          string   `json:"side_effects"`
	Warnings             []string `json:"warnings"`
	PatchTestRecommended bool     `json:"patch_test_recommended"`
}

// ProductPage is the generated product description payload.
type ProductPage struct {
	PageID         string         `json:"page_id"`
	PageType       string         `json:"page_type"`
	Title          string         `json:"title"`
	ProductID      string         `json:"product_id"`
	Tagline        string         `json:"tagline"`
	Description    string         `json:"description"`
	Benefits       []Benefit      `json:"benefits"`
	BenefitsHTML   string         `json:"benefits_html"`
	Specifications Specifications `json:"specifications"`
	UsageGuide     []string       `json:"usage_guide"`
	TargetAudience []string       `json:"target_audience"`
	SafetyInfo     SafetyInfo     `json:"safety_info"`
	GeneratedAt    string         `json:"generated_at"`
}

// ComparisonPage is the generated comparison payload.
type ComparisonPage struct {
	PageID              string            `json:"page_id"`
	PageType            string            `json:"page_type"`
	Title               string            `json:"title"`
	ProductA            ProductSummary    `json:"product_a"`
	ProductB            ProductSummary    `json:"product_b"`
	DetailedComparison  ComparisonResult  `json:"detailed_comparison"`
	ComparisonAnalysis  string            `json:"comparison_analysis"`
	Recommendations     RecommendationSet `json:"recommendations"`
	Insights            []string          `json:"insights"`
	ComparisonTableHTML string            `json:"comparison_table_html"`
	Winner              string            `json:"winner"`
	GeneratedAt         string            `json:"generated_at"`
}
