package usecase

import "testing"

func TestSkinTypeOverlap(t *testing.T) {
	t.Run("all short-circuits everything else", func(t *testing.T) {
		cases := []struct{ a, b string }{
			{"Oily", "All"},
			{"All", "Oily"},
			{"all skin types", "dry"},
			{"All", "All"},
		}
		for _, tc := range cases {
			if got := SkinTypeOverlap(tc.a, tc.b); got != "One product suits all skin types" {
				t.Errorf("SkinTypeOverlap(%q, %q) = %q, want suits-all label", tc.a, tc.b, got)
			}
		}
	})

	t.Run("no shared tokens", func(t *testing.T) {
		if got := SkinTypeOverlap("Oily, Combination", "Dry, Sensitive"); got != "Different target skin types" {
			t.Errorf("got %q, want Different target skin types", got)
		}
	})

	t.Run("identical sets regardless of order and spacing", func(t *testing.T) {
		if got := SkinTypeOverlap("Oily, Dry", "dry,oily"); got != "Identical skin type targeting" {
			t.Errorf("got %q, want Identical skin type targeting", got)
		}
	})

	t.Run("partial overlap", func(t *testing.T) {
		if got := SkinTypeOverlap("Oily, Dry", "Dry, Sensitive"); got != "Partial overlap in skin types" {
			t.Errorf("got %q, want Partial overlap in skin types", got)
		}
	})

	t.Run("is symmetric", func(t *testing.T) {
		pairs := []struct{ a, b string }{
			{"Oily, Dry", "Dry, Sensitive"},
			{"Oily", "Dry"},
			{"Oily, Dry", "dry, oily"},
			{"All", "Oily"},
		}
		for _, tc := range pairs {
			if SkinTypeOverlap(tc.a, tc.b) != SkinTypeOverlap(tc.b, tc.a) {
				t.Errorf("SkinTypeOverlap not symmetric for (%q, %q)", tc.a, tc.b)
			}
		}
	})
}

func TestIngredientSimilarity(t *testing.T) {
	t.Run("identical lists are high similarity", func(t *testing.T) {
		if got := IngredientSimilarity("Niacinamide, Zinc", "zinc, niacinamide"); got != "High similarity" {
			t.Errorf("got %q, want High similarity", got)
		}
	})

	t.Run("one third overlap is medium similarity", func(t *testing.T) {
		// Jaccard({x,y},{x,z}) = 1/3 which clears the 0.3 threshold.
		if got := IngredientSimilarity("X, Y", "X, Z"); got != "Medium similarity" {
			t.Errorf("got %q, want Medium similarity", got)
		}
	})

	t.Run("disjoint lists are different formulations", func(t *testing.T) {
		if got := IngredientSimilarity("A, B", "C, D"); got != "Different formulations" {
			t.Errorf("got %q, want Different formulations", got)
		}
	})

	t.Run("exact threshold 0.7 is still medium", func(t *testing.T) {
		// |intersection| = 7, |union| = 10 -> exactly 0.7; thresholds are
		// strict greater-than.
		a := "s1,s2,s3,s4,s5,s6,s7,a1"
		b := "s1,s2,s3,s4,s5,s6,s7,b1,b2"
		if got := IngredientSimilarity(a, b); got != "Medium similarity" {
			t.Errorf("similarity 0.7 = %q, want Medium similarity", got)
		}
	})

	t.Run("just above 0.7 is high", func(t *testing.T) {
		// |intersection| = 3, |union| = 4 -> 0.75.
		if got := IngredientSimilarity("a,b,c", "a,b,c,d"); got != "High similarity" {
			t.Errorf("similarity 0.75 = %q, want High similarity", got)
		}
	})

	t.Run("exact threshold 0.3 is still different formulations", func(t *testing.T) {
		// |intersection| = 3, |union| = 10 -> exactly 0.3.
		a := "s1,s2,s3,a1,a2,a3"
		b := "s1,s2,s3,b1,b2,b3,b4"
		if got := IngredientSimilarity(a, b); got != "Different formulations" {
			t.Errorf("similarity 0.3 = %q, want Different formulations", got)
		}
	})

	t.Run("is symmetric", func(t *testing.T) {
		pairs := []struct{ a, b string }{
			{"X, Y", "X, Z"},
			{"a,b,c", "a,b,c,d"},
			{"A", "B"},
			{"", "Niacinamide"},
		}
		for _, tc := range pairs {
			if IngredientSimilarity(tc.a, tc.b) != IngredientSimilarity(tc.b, tc.a) {
				t.Errorf("IngredientSimilarity not symmetric for (%q, %q)", tc.a, tc.b)
			}
		}
	})
}

func TestTokenSet(t *testing.T) {
	t.Run("collapses duplicates and strips spaces", func(t *testing.T) {
		set := tokenSet("Oily, oily,  OILY , Dry")
		if len(set) != 2 {
			t.Errorf("len(tokenSet) = %d, want 2", len(set))
		}
		if _, ok := set["oily"]; !ok {
			t.Error("expected token oily")
		}
		if _, ok := set["dry"]; !ok {
			t.Error("expected token dry")
		}
	})
}
