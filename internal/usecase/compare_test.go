package usecase

import (
	"testing"

	"github.com/glowgen/backend/internal/domain"
)

func testProducts() (domain.ProductRecord, domain.ProductRecord) {
	a := domain.ProductRecord{
		Name:           "A",
		Price:          "₹500",
		Concentration:  "10% X",
		SkinType:       "Oily",
		KeyIngredients: "X,Y",
		Benefits:       "Brightening",
	}
	b := domain.ProductRecord{
		Name:           "B",
		Price:          "₹800",
		Concentration:  "15% X",
		SkinType:       "All",
		KeyIngredients: "X,Z",
		Benefits:       "Hydration",
	}
	return a, b
}

func TestCompare(t *testing.T) {
	t.Run("baseline scenario", func(t *testing.T) {
		a, b := testProducts()
		cmp := Compare(a, b)

		if cmp.PriceA != 500 || cmp.PriceB != 800 {
			t.Errorf("prices = (%d, %d), want (500, 800)", cmp.PriceA, cmp.PriceB)
		}
		if cmp.PriceDiff != 300 {
			t.Errorf("PriceDiff = %d, want 300", cmp.PriceDiff)
		}
		if cmp.CheaperProduct != "A" {
			t.Errorf("CheaperProduct = %q, want A", cmp.CheaperProduct)
		}
		if cmp.BetterPrice != domain.SideProductA {
			t.Errorf("BetterPrice = %q, want product_a", cmp.BetterPrice)
		}
		if cmp.ConcentrationA != 10 || cmp.ConcentrationB != 15 {
			t.Errorf("concentrations = (%d, %d), want (10, 15)", cmp.ConcentrationA, cmp.ConcentrationB)
		}
		if cmp.ConcentrationDiff != "5%" {
			t.Errorf("ConcentrationDiff = %q, want 5%%", cmp.ConcentrationDiff)
		}
		if cmp.HigherConcentration != "B" {
			t.Errorf("HigherConcentration = %q, want B", cmp.HigherConcentration)
		}
		if cmp.SkinTypeMatch != "One product suits all skin types" {
			t.Errorf("SkinTypeMatch = %q, want suits-all label", cmp.SkinTypeMatch)
		}
		// Jaccard({x,y},{x,z}) = 1/3 > 0.3
		if cmp.IngredientSimilarity != "Medium similarity" {
			t.Errorf("IngredientSimilarity = %q, want Medium similarity", cmp.IngredientSimilarity)
		}
		if cmp.MoreVersatile != domain.SideProductB {
			t.Errorf("MoreVersatile = %q, want product_b", cmp.MoreVersatile)
		}
	})

	t.Run("product compared with itself", func(t *testing.T) {
		a, _ := testProducts()
		cmp := Compare(a, a)

		if cmp.PriceDiff != 0 {
			t.Errorf("PriceDiff = %d, want 0", cmp.PriceDiff)
		}
		if cmp.ConcentrationDiff != "0%" {
			t.Errorf("ConcentrationDiff = %q, want 0%%", cmp.ConcentrationDiff)
		}
		if cmp.SkinTypeMatch != "Identical skin type targeting" {
			t.Errorf("SkinTypeMatch = %q, want Identical skin type targeting", cmp.SkinTypeMatch)
		}
		if cmp.IngredientSimilarity != "High similarity" {
			t.Errorf("IngredientSimilarity = %q, want High similarity", cmp.IngredientSimilarity)
		}
	})

	t.Run("price tie resolves to product b", func(t *testing.T) {
		a, b := testProducts()
		b.Price = a.Price
		cmp := Compare(a, b)

		if cmp.CheaperProduct != "B" {
			t.Errorf("CheaperProduct = %q, want B on tie", cmp.CheaperProduct)
		}
		if cmp.BetterPrice != domain.SideProductB {
			t.Errorf("BetterPrice = %q, want product_b on tie", cmp.BetterPrice)
		}
	})

	t.Run("concentration tie resolves to product b", func(t *testing.T) {
		a, b := testProducts()
		b.Concentration = a.Concentration
		cmp := Compare(a, b)

		if cmp.HigherConcentration != "B" {
			t.Errorf("HigherConcentration = %q, want B on tie", cmp.HigherConcentration)
		}
	})

	t.Run("malformed concentration zeroes both sides", func(t *testing.T) {
		a, b := testProducts()
		a.Concentration = "N/A"
		cmp := Compare(a, b)

		if cmp.ConcentrationA != 0 || cmp.ConcentrationB != 0 {
			t.Errorf("concentrations = (%d, %d), want (0, 0)", cmp.ConcentrationA, cmp.ConcentrationB)
		}
		if cmp.ConcentrationDiff != "0%" {
			t.Errorf("ConcentrationDiff = %q, want 0%%", cmp.ConcentrationDiff)
		}
	})

	t.Run("malformed concentration on both sides yields zeros", func(t *testing.T) {
		a, b := testProducts()
		a.Concentration = "N/A"
		b.Concentration = "unknown"
		cmp := Compare(a, b)

		if cmp.ConcentrationA != 0 || cmp.ConcentrationB != 0 {
			t.Errorf("concentrations = (%d, %d), want (0, 0)", cmp.ConcentrationA, cmp.ConcentrationB)
		}
	})

	t.Run("malformed price resolves to zero silently", func(t *testing.T) {
		a, b := testProducts()
		a.Price = "contact us"
		cmp := Compare(a, b)

		if cmp.PriceA != 0 {
			t.Errorf("PriceA = %d, want 0", cmp.PriceA)
		}
		if cmp.CheaperProduct != "A" {
			t.Errorf("CheaperProduct = %q, want A (0 < 800)", cmp.CheaperProduct)
		}
	})
}

func TestMoreVersatile(t *testing.T) {
	t.Run("all on product b wins even when a also has all", func(t *testing.T) {
		if got := moreVersatile("All", "all skin types"); got != domain.SideProductB {
			t.Errorf("got %q, want product_b", got)
		}
	})

	t.Run("all on product a wins over plain list", func(t *testing.T) {
		if got := moreVersatile("All", "Oily, Dry"); got != domain.SideProductA {
			t.Errorf("got %q, want product_a", got)
		}
	})

	t.Run("longer skin type list wins", func(t *testing.T) {
		if got := moreVersatile("Oily, Dry, Combination", "Oily"); got != domain.SideProductA {
			t.Errorf("got %q, want product_a", got)
		}
	})

	t.Run("equal list lengths resolve to product b", func(t *testing.T) {
		if got := moreVersatile("Oily, Dry", "Dry, Sensitive"); got != domain.SideProductB {
			t.Errorf("got %q, want product_b on tie", got)
		}
	})
}
