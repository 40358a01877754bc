package usecase

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glowgen/backend/internal/domain"
)

// ComparisonService assembles full comparison pages from product pairs.
// Entirely rule-based; it takes no text generator dependency.
type ComparisonService struct{}

// NewComparisonService creates a new comparison service.
func NewComparisonService() *ComparisonService {
	return &ComparisonService{}
}

// BuildPage runs the comparison engine over both products and assembles the
// complete page payload: analysis prose, recommendations, insights, the
// HTML comparison table and the scored winner.
func (s *ComparisonService) BuildPage(a, b domain.ProductRecord) *domain.ComparisonPage {
	cmp := Compare(a, b)

	return &domain.ComparisonPage{
		PageID:              uuid.NewString(),
		PageType:            "Product Comparison",
		Title:               fmt.Sprintf("%s vs %s", a.Name, b.Name),
		ProductA:            a.Summary(),
		ProductB:            b.Summary(),
		DetailedComparison:  cmp,
		ComparisonAnalysis:  ComposeAnalysis(a, b, cmp),
		Recommendations:     Recommend(a, b, cmp),
		Insights:            comparisonInsights(cmp),
		ComparisonTableHTML: comparisonTable(a, b),
		Winner:              Winner(cmp),
		GeneratedAt:         time.Now().UTC().Format(time.RFC3339),
	}
}

// comparisonInsights lists the headline data points of a comparison.
func comparisonInsights(cmp domain.ComparisonResult) []string {
	return []string{
		fmt.Sprintf("Concentration difference: %s", cmp.ConcentrationDiff),
		fmt.Sprintf("Price difference: %s%d", currencySymbol, cmp.PriceDiff),
		fmt.Sprintf("Skin type compatibility: %s", cmp.SkinTypeMatch),
		fmt.Sprintf("Ingredient overlap: %s", cmp.IngredientSimilarity),
	}
}

// comparisonTable renders a side-by-side feature table. Product fields are
// free-form strings, so every value is escaped.
func comparisonTable(a, b domain.ProductRecord) string {
	rows := []struct {
		feature string
		valueA  string
		valueB  string
		strong  bool
	}{
		{"Concentration", a.Concentration, b.Concentration, false},
		{"Skin Type", a.SkinType, b.SkinType, false},
		{"Key Ingredients", a.KeyIngredients, b.KeyIngredients, false},
		{"Benefits", a.Benefits, b.Benefits, false},
		{"Price", a.Price, b.Price, true},
	}

	var sb strings.Builder
	sb.WriteString(`<table class="comparison-table">`)
	sb.WriteString("<thead><tr><th>Feature</th>")
	fmt.Fprintf(&sb, "<th>%s</th><th>%s</th>", html.EscapeString(a.Name), html.EscapeString(b.Name))
	sb.WriteString("</tr></thead><tbody>")

	for _, row := range rows {
		valueA := html.EscapeString(row.valueA)
		valueB := html.EscapeString(row.valueB)
		if row.strong {
			valueA = "<strong>" + valueA + "</strong>"
			valueB = "<strong>" + valueB + "</strong>"
		}
		fmt.Fprintf(&sb, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>", row.feature, valueA, valueB)
	}

	sb.WriteString("</tbody></table>")
	return sb.String()
}
