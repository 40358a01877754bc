package usecase

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glowgen/backend/internal/domain"
)

// Token caps for product page generation.
const (
	descriptionMaxTokens = 400
	benefitsMaxTokens    = 200
)

// ProductService assembles product description pages. The text generator
// enriches benefit descriptions and the marketing copy; every generated
// piece has a rule-based fallback so pages always complete.
type ProductService struct {
	generator domain.TextGenerator
}

// NewProductService creates a new product page service. generator may be
// nil for fully rule-based generation.
func NewProductService(generator domain.TextGenerator) *ProductService {
	return &ProductService{generator: generator}
}

// BuildPage assembles the complete product description payload.
func (s *ProductService) BuildPage(ctx context.Context, product domain.ProductRecord) *domain.ProductPage {
	benefits := s.extractBenefits(ctx, product)

	return &domain.ProductPage{
		PageID:       uuid.NewString(),
		PageType:     "Product Description",
		Title:        product.Name,
		ProductID:    product.ProductID,
		Tagline:      fmt.Sprintf("Experience the Power of %s", product.Concentration),
		Description:  s.description(ctx, product, benefitSummary(benefits)),
		Benefits:     benefits,
		BenefitsHTML: benefitsHTML(benefits),
		Specifications: domain.Specifications{
			Concentration:   product.Concentration,
			SkinType:        product.SkinType,
			KeyIngredients:  product.KeyIngredients,
			BenefitsSummary: product.Benefits,
			Usage:           product.HowToUse,
			SideEffects:     product.SideEffects,
			Price:           product.Price,
		},
		UsageGuide:     usageGuide(product),
		TargetAudience: targetAudience(product),
		SafetyInfo: domain.SafetyInfo{
			SideEffects: product.SideEffects,
			Warnings: []string{
				"Perform a patch test before first use",
				"Avoid contact with eyes",
				"Use sunscreen during the day",
			},
			PatchTestRecommended: true,
		},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// extractBenefits asks the generator to elaborate each listed benefit and
// parses "Name - Description" lines out of the response. When generation is
// unavailable or unparseable, the comma-separated benefits field is used
// directly.
func (s *ProductService) extractBenefits(ctx context.Context, product domain.ProductRecord) []domain.Benefit {
	if s.generator != nil {
		prompt := fmt.Sprintf(`Extract and elaborate on the benefits of this product:

Product: %s
Listed Benefits: %s
Ingredients: %s

For each benefit, provide a brief 1-sentence explanation.

Format your response as:
1. [Benefit Name] - [How it works]
2. [Benefit Name] - [How it works]

Generate the benefits now:`, product.Name, product.Benefits, product.KeyIngredients)

		response, err := s.generator.Generate(ctx, prompt, benefitsMaxTokens)
		if err != nil {
			log.Printf("[PRODUCT] benefit generation failed for %q: %v", product.Name, err)
		} else if benefits := parseBenefitLines(response); len(benefits) > 0 {
			return benefits
		}
	}

	return fallbackBenefits(product.Benefits)
}

// parseBenefitLines extracts "Name - Description" pairs from generated
// text, tolerating list numbering and bullet prefixes.
func parseBenefitLines(response string) []domain.Benefit {
	var benefits []domain.Benefit

	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "0123456789.-* ")
		if line == "" {
			continue
		}

		name, description, found := strings.Cut(line, "-")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		description = strings.TrimSpace(description)
		if name == "" || description == "" {
			continue
		}

		benefits = append(benefits, domain.Benefit{Name: name, Description: description})
	}

	return benefits
}

// fallbackBenefits splits the raw benefits field on commas.
func fallbackBenefits(rawBenefits string) []domain.Benefit {
	var benefits []domain.Benefit
	for _, benefit := range strings.Split(rawBenefits, ",") {
		benefit = strings.TrimSpace(benefit)
		if benefit == "" {
			continue
		}
		benefits = append(benefits, domain.Benefit{
			Name:        benefit,
			Description: fmt.Sprintf("This product provides %s benefits.", strings.ToLower(benefit)),
		})
	}
	return benefits
}

// description generates the three-paragraph marketing copy, falling back to
// a deterministic summary when generation is unavailable.
func (s *ProductService) description(ctx context.Context, product domain.ProductRecord, summary string) string {
	if s.generator != nil {
		prompt := fmt.Sprintf(`Write a compelling 3-paragraph product description for this skincare product:

Product: %s
Concentration: %s
Skin Type: %s
Ingredients: %s
Benefits: %s
Usage: %s
Price: %s

PARAGRAPH 1: Introduction - What is this product and why it's special
PARAGRAPH 2: Key benefits and how the ingredients work together
PARAGRAPH 3: Expected results and why customers love it

Requirements:
- Professional, marketing-focused tone
- Each paragraph should be 3-4 sentences
- Make it compelling but factual
- Do NOT use bullet points

Write the 3 paragraphs now:`,
			product.Name, product.Concentration, product.SkinType,
			product.KeyIngredients, product.Benefits, product.HowToUse, product.Price)

		description, err := s.generator.Generate(ctx, prompt, descriptionMaxTokens)
		if err != nil {
			log.Printf("[PRODUCT] description generation failed for %q: %v", product.Name, err)
		} else if description = strings.TrimSpace(description); description != "" {
			return description
		}
	}

	return fmt.Sprintf("%s features %s and is formulated for %s skin. Key ingredients include %s, delivering %s.",
		product.Name, product.Concentration, product.SkinType,
		product.KeyIngredients, strings.ToLower(summary))
}

// benefitSummary joins up to three benefit names into a readable phrase.
func benefitSummary(benefits []domain.Benefit) string {
	if len(benefits) == 0 {
		return "Multiple skincare benefits"
	}

	names := make([]string, 0, 3)
	for _, b := range benefits {
		if len(names) == 3 {
			break
		}
		names = append(names, b.Name)
	}

	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

// benefitsHTML renders the benefits as an escaped HTML list.
func benefitsHTML(benefits []domain.Benefit) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, benefit := range benefits {
		fmt.Fprintf(&sb, "<li><strong>%s</strong>: %s</li>",
			html.EscapeString(benefit.Name), html.EscapeString(benefit.Description))
	}
	sb.WriteString("</ul>")
	return sb.String()
}

func usageGuide(product domain.ProductRecord) []string {
	guide := []string{"Cleanse your face thoroughly before application"}
	if product.HowToUse != "" {
		guide = append(guide, product.HowToUse)
	}
	return append(guide,
		"Follow with moisturizer and sunscreen",
		"Use consistently for best results",
	)
}

func targetAudience(product domain.ProductRecord) []string {
	return []string{
		fmt.Sprintf("People with %s skin", strings.ToLower(product.SkinType)),
		fmt.Sprintf("Those seeking %s", strings.ToLower(product.Benefits)),
		"Anyone wanting to improve skin radiance",
	}
}
