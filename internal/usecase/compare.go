package usecase

import (
	"fmt"
	"strings"

	"github.com/glowgen/backend/internal/domain"
)

// Compare derives a ComparisonResult from two product records. It is a pure
// function: no I/O, no shared state, total over well-formed records.
// Malformed numeric fields resolve silently to zero rather than erroring.
//
// Tie-break rules are deliberate and load-bearing: equal prices and equal
// concentrations both resolve to product B (strict less-than / greater-than
// comparisons falling through to B). Changing them changes the winner
// scoring downstream.
func Compare(a, b domain.ProductRecord) domain.ComparisonResult {
	priceA := ExtractNumber(a.Price)
	priceB := ExtractNumber(b.Price)

	// Concentration parsing is all-or-nothing: if either side has no
	// leading digits, both values fall back to zero.
	concA, okA := ParseConcentration(a.Concentration)
	concB, okB := ParseConcentration(b.Concentration)
	if !okA || !okB {
		concA, concB = 0, 0
	}

	cheaper := b.Name
	betterPrice := domain.SideProductB
	if priceA < priceB {
		cheaper = a.Name
		betterPrice = domain.SideProductA
	}

	higherConc := b.Name
	if concA > concB {
		higherConc = a.Name
	}

	return domain.ComparisonResult{
		ProductAName: a.Name,
		ProductBName: b.Name,

		PriceA:         priceA,
		PriceB:         priceB,
		PriceDiff:      absInt(priceA - priceB),
		CheaperProduct: cheaper,
		BetterPrice:    betterPrice,

		ConcentrationA:      concA,
		ConcentrationB:      concB,
		ConcentrationDiff:   fmt.Sprintf("%d%%", absInt(concA-concB)),
		HigherConcentration: higherConc,

		SkinTypeA:     a.SkinType,
		SkinTypeB:     b.SkinType,
		SkinTypeMatch: SkinTypeOverlap(a.SkinType, b.SkinType),

		IngredientsA:         a.KeyIngredients,
		IngredientsB:         b.KeyIngredients,
		IngredientSimilarity: IngredientSimilarity(a.KeyIngredients, b.KeyIngredients),

		MoreVersatile: moreVersatile(a.SkinType, b.SkinType),
	}
}

// moreVersatile picks the product with broader skin type coverage. A product
// declaring "all" wins outright, product B checked first; otherwise the
// longer comma-separated list wins, ties going to product B.
func moreVersatile(skinTypeA, skinTypeB string) string {
	if strings.Contains(strings.ToLower(skinTypeB), "all") {
		return domain.SideProductB
	}
	if strings.Contains(strings.ToLower(skinTypeA), "all") {
		return domain.SideProductA
	}

	countA := len(strings.Split(skinTypeA, ","))
	countB := len(strings.Split(skinTypeB, ","))
	if countA > countB {
		return domain.SideProductA
	}
	return domain.SideProductB
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
