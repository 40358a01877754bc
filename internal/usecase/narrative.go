package usecase

import (
	"fmt"
	"strings"

	"github.com/glowgen/backend/internal/domain"
)

// currencySymbol is the single display symbol for rendered prices. The
// extractor strips all symbols on input, so every rendered amount goes
// through this one constant.
const currencySymbol = "₹"

// ComposeAnalysis renders a comparison into three prose paragraphs joined
// by blank lines. Pure string interpolation over the comparison record:
// all branching lives in the comparison engine, none here beyond choosing
// which precomputed field to echo.
func ComposeAnalysis(a, b domain.ProductRecord, cmp domain.ComparisonResult) string {
	overview := fmt.Sprintf(
		"Both %s and %s are skincare serums designed to improve skin health and appearance. "+
			"%s features %s and is formulated for %s skin, while %s contains %s and targets %s skin. "+
			"These products serve different needs in a comprehensive skincare routine.",
		a.Name, b.Name,
		a.Name, a.Concentration, a.SkinType,
		b.Name, b.Concentration, b.SkinType,
	)

	cheaperPrice := cmp.PriceB
	if cmp.BetterPrice == domain.SideProductA {
		cheaperPrice = cmp.PriceA
	}
	priceNote := fmt.Sprintf("%s is more affordable at %s%d", cmp.CheaperProduct, currencySymbol, cheaperPrice)

	concNote := "Both have similar concentrations"
	if cmp.ConcentrationA != cmp.ConcentrationB {
		concNote = fmt.Sprintf("%s has a higher concentration", cmp.HigherConcentration)
	}

	ingredientNote := fmt.Sprintf("The formulations show %s", strings.ToLower(cmp.IngredientSimilarity))

	differences := fmt.Sprintf(
		"Key differences include formulation and targeting. %s, which may indicate different potency levels. "+
			"%s, with %s focusing on %s and %s utilizing %s. "+
			"In terms of pricing, %s, making it the more budget-friendly option.",
		concNote,
		ingredientNote, a.Name, a.KeyIngredients, b.Name, b.KeyIngredients,
		priceNote,
	)

	versatilityWinner := b.Name
	if cmp.MoreVersatile == domain.SideProductA {
		versatilityWinner = a.Name
	}

	value := fmt.Sprintf(
		"%s offers greater versatility in terms of skin type compatibility. "+
			"For those seeking %s, %s is the clear choice, while %s excels at %s. "+
			"The price difference of %s%d should be weighed against your specific skin concerns and budget constraints.",
		versatilityWinner,
		strings.ToLower(a.Benefits), a.Name, b.Name, strings.ToLower(b.Benefits),
		currencySymbol, cmp.PriceDiff,
	)

	return overview + "\n\n" + differences + "\n\n" + value
}
