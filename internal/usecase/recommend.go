package usecase

import (
	"strings"

	"github.com/glowgen/backend/internal/domain"
)

// Recommendation sentinels returned when neither product stands out.
const (
	bothSuitable  = "Both products suitable"
	bothEffective = "Both equally effective"
	winnerTie     = "Tie - Both excellent choices"
)

// Recommend derives per-scenario buying recommendations. Tie-breaks differ
// per scenario: budget resolves equal prices to product B while maximum
// results resolves equal concentrations to product A.
func Recommend(a, b domain.ProductRecord, cmp domain.ComparisonResult) domain.RecommendationSet {
	return domain.RecommendationSet{
		ForOilySkin:        recommendForSkinType(a, b, "oily"),
		ForSensitiveSkin:   recommendForSkinType(a, b, "sensitive"),
		ForBudgetConscious: recommendByPrice(a, b, cmp),
		ForMaximumResults:  recommendByEffectiveness(a, b),
	}
}

// recommendForSkinType names the product whose skin type list mentions the
// target type, or the both-suitable sentinel when both or neither do.
func recommendForSkinType(a, b domain.ProductRecord, skinType string) string {
	aCompatible := strings.Contains(strings.ToLower(a.SkinType), skinType)
	bCompatible := strings.Contains(strings.ToLower(b.SkinType), skinType)

	switch {
	case aCompatible && !bCompatible:
		return a.Name
	case bCompatible && !aCompatible:
		return b.Name
	default:
		return bothSuitable
	}
}

// recommendByPrice names the strictly cheaper product; equal prices resolve
// to product B, mirroring the comparison engine's price tie-break.
func recommendByPrice(a, b domain.ProductRecord, cmp domain.ComparisonResult) string {
	if cmp.PriceA < cmp.PriceB {
		return a.Name
	}
	return b.Name
}

// recommendByEffectiveness names the product with the higher-or-equal
// concentration (ties resolve to product A). Concentrations are re-parsed
// strictly here: if either fails to parse, neither product can be ranked.
func recommendByEffectiveness(a, b domain.ProductRecord) string {
	concA, okA := ParseConcentration(a.Concentration)
	concB, okB := ParseConcentration(b.Concentration)
	if !okA || !okB {
		return bothEffective
	}

	if concA >= concB {
		return a.Name
	}
	return b.Name
}

// Winner scores the comparison two ways, one point for the better-priced
// side and one for the more versatile side, and names the product with the
// higher total. Under the current tie-break rules both points always land
// somewhere, so a 1-1 split is the only possible tie.
func Winner(cmp domain.ComparisonResult) string {
	scoreA, scoreB := 0, 0

	if cmp.BetterPrice == domain.SideProductA {
		scoreA++
	} else {
		scoreB++
	}

	if cmp.MoreVersatile == domain.SideProductA {
		scoreA++
	} else {
		scoreB++
	}

	switch {
	case scoreA > scoreB:
		return cmp.ProductAName
	case scoreB > scoreA:
		return cmp.ProductBName
	default:
		return winnerTie
	}
}
