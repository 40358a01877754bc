package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/glowgen/backend/internal/domain"
)

// WorkflowResult aggregates everything one run produced.
type WorkflowResult struct {
	Products     []domain.ProductRecord `json:"products"`
	Questions    []domain.Question      `json:"questions"`
	FAQ          *domain.FAQPage        `json:"faq"`
	ProductPages []*domain.ProductPage  `json:"product_pages"`
	Comparison   *domain.ComparisonPage `json:"comparison,omitempty"`
}

// Workflow sequences the content generation steps and persists each page
// through the store: questions for the first product, its FAQ page, a
// description page per product, and a comparison page when at least two
// products are supplied.
type Workflow struct {
	questions  *QuestionService
	faq        *FAQService
	products   *ProductService
	comparison *ComparisonService
	store      domain.PageStore
}

// NewWorkflow wires the workflow from its services and the page store.
func NewWorkflow(
	questions *QuestionService,
	faq *FAQService,
	products *ProductService,
	comparison *ComparisonService,
	store domain.PageStore,
) *Workflow {
	return &Workflow{
		questions:  questions,
		faq:        faq,
		products:   products,
		comparison: comparison,
		store:      store,
	}
}

// Run executes the full workflow over the parsed products.
func (w *Workflow) Run(ctx context.Context, products []domain.ProductRecord) (*WorkflowResult, error) {
	if len(products) == 0 {
		return nil, domain.ErrNoProducts
	}

	log.Printf("[WORKFLOW] Starting with %d product(s)", len(products))

	questions := w.questions.Generate(products[0])
	if err := w.store.Save(ctx, "questions", questions); err != nil {
		return nil, fmt.Errorf("saving questions: %w", err)
	}
	log.Printf("[WORKFLOW] Generated %d questions", len(questions))

	faqPage := w.faq.BuildPage(ctx, questions, products[0])
	if err := w.store.Save(ctx, "faq", faqPage); err != nil {
		return nil, fmt.Errorf("saving faq: %w", err)
	}
	log.Printf("[WORKFLOW] FAQ created with %d Q&As", faqPage.TotalQuestions)

	productPages := make([]*domain.ProductPage, 0, len(products))
	for i, product := range products {
		page := w.products.BuildPage(ctx, product)
		name := fmt.Sprintf("product_page_%d", i+1)
		if err := w.store.Save(ctx, name, page); err != nil {
			return nil, fmt.Errorf("saving %s: %w", name, err)
		}
		productPages = append(productPages, page)
		log.Printf("[WORKFLOW] Created page for %q", product.Name)
	}

	result := &WorkflowResult{
		Products:     products,
		Questions:    questions,
		FAQ:          faqPage,
		ProductPages: productPages,
	}

	if len(products) >= 2 {
		comparisonPage := w.comparison.BuildPage(products[0], products[1])
		if err := w.store.Save(ctx, "comparison_page", comparisonPage); err != nil {
			return nil, fmt.Errorf("saving comparison: %w", err)
		}
		result.Comparison = comparisonPage
		log.Printf("[WORKFLOW] Comparison: %s vs %s (winner: %s)",
			products[0].Name, products[1].Name, comparisonPage.Winner)
	} else {
		log.Printf("[WORKFLOW] Single product, skipping comparison page")
	}

	log.Printf("[WORKFLOW] Complete")
	return result, nil
}
