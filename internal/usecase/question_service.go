package usecase

import (
	"log"
	"strings"

	"github.com/glowgen/backend/internal/domain"
)

// questionCount is the fixed number of questions generated per product.
const questionCount = 15

// questionCategory groups question templates under a category name.
// Order matters: categories are walked in sequence until the quota fills.
type questionCategory struct {
	Name      string
	Templates []string
}

// questionTemplates are the rule-based question skeletons. Placeholders are
// substituted from the product record; no text generation is involved.
var questionTemplates = []questionCategory{
	{
		Name: "Informational",
		Templates: []string{
			"What is {product_name} and what does it do?",
			"What is the concentration of {active_ingredient} in {product_name}?",
			"What skin types is {product_name} suitable for?",
		},
	},
	{
		Name: "Safety",
		Templates: []string{
			"Are there any side effects of using {product_name}?",
			"Can I use {product_name} if I have sensitive skin?",
			"Should I do a patch test before using {product_name}?",
		},
	},
	{
		Name: "Usage",
		Templates: []string{
			"How do I apply {product_name} correctly?",
			"When is the best time to use {product_name}?",
			"Can I use {product_name} with other skincare products?",
		},
	},
	{
		Name: "Purchase",
		Templates: []string{
			"What is the price of {product_name}?",
			"How long will one bottle of {product_name} last?",
		},
	},
	{
		Name: "Ingredients",
		Templates: []string{
			"What are the key ingredients in {product_name}?",
			"How does {concentration} work for {benefits}?",
		},
	},
	{
		Name: "Results",
		Templates: []string{
			"How long does it take to see results from {product_name}?",
			"What results can I expect from using {product_name}?",
		},
	},
	{
		Name: "Comparison",
		Templates: []string{
			"How does {product_name} compare to other products?",
		},
	},
}

// QuestionService generates categorized customer questions from templates.
type QuestionService struct {
	enableDebugLogging bool
}

// NewQuestionService creates a new question service.
func NewQuestionService(enableDebugLogging bool) *QuestionService {
	return &QuestionService{enableDebugLogging: enableDebugLogging}
}

// Generate produces exactly questionCount categorized questions for a
// product by filling the fixed templates with product attributes.
func (s *QuestionService) Generate(product domain.ProductRecord) []domain.Question {
	replacer := questionReplacer(product)

	questions := make([]domain.Question, 0, questionCount)
	for _, category := range questionTemplates {
		for _, tmpl := range category.Templates {
			if len(questions) >= questionCount {
				break
			}
			questions = append(questions, domain.Question{
				Question: replacer.Replace(tmpl),
				Category: category.Name,
			})
		}
	}

	if s.enableDebugLogging {
		log.Printf("[QUESTIONS] Generated %d questions for %q", len(questions), product.Name)
	}

	return questions
}

// questionReplacer builds the placeholder substitution for one product.
// The active ingredient is the first word of the concentration string
// ("10% Niacinamide" -> "10%"... in practice the leading strength token).
func questionReplacer(product domain.ProductRecord) *strings.Replacer {
	activeIngredient := "active ingredient"
	if fields := strings.Fields(product.Concentration); len(fields) > 0 {
		activeIngredient = fields[0]
	}

	skinType := product.SkinType
	if skinType == "" {
		skinType = "all skin types"
	}

	name := product.Name
	if name == "" {
		name = "product"
	}

	return strings.NewReplacer(
		"{product_name}", name,
		"{concentration}", product.Concentration,
		"{active_ingredient}", activeIngredient,
		"{benefits}", strings.ToLower(product.Benefits),
		"{skin_type}", skinType,
		"{price}", product.Price,
	)
}
