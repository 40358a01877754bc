package usecase

import (
	"errors"
	"testing"

	"github.com/glowgen/backend/internal/domain"
)

func TestParseProducts(t *testing.T) {
	t.Run("parses multi-product input", func(t *testing.T) {
		input := []byte(`{
			"products": [
				{"name": "A", "price": "₹500", "concentration": "10% X", "skin_type": "Oily", "key_ingredients": "X,Y", "benefits": "Brightening"},
				{"name": "B", "price": "₹800"}
			]
		}`)

		products, err := ParseProducts(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("product count = %d, want 2", len(products))
		}
		if products[0].Name != "A" || products[1].Name != "B" {
			t.Errorf("names = (%q, %q), want (A, B)", products[0].Name, products[1].Name)
		}
		if products[0].ProductID != "GLOW_001" || products[1].ProductID != "GLOW_002" {
			t.Errorf("ids = (%q, %q), want sequential GLOW ids", products[0].ProductID, products[1].ProductID)
		}
	})

	t.Run("absent fields decode to empty strings", func(t *testing.T) {
		products, err := ParseProducts([]byte(`{"products": [{"name": "A"}]}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := products[0]
		if p.Price != "" || p.Concentration != "" || p.SkinType != "" || p.KeyIngredients != "" {
			t.Errorf("expected empty string fields, got %+v", p)
		}
	})

	t.Run("parses single bare product", func(t *testing.T) {
		products, err := ParseProducts([]byte(`{"name": "Solo", "price": "₹999"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("product count = %d, want 1", len(products))
		}
		if products[0].Name != "Solo" {
			t.Errorf("name = %q, want Solo", products[0].Name)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := ParseProducts([]byte(`{not json`))
		if !errors.Is(err, domain.ErrInvalidProduct) {
			t.Errorf("error = %v, want ErrInvalidProduct", err)
		}
	})

	t.Run("rejects empty product list", func(t *testing.T) {
		_, err := ParseProducts([]byte(`{"products": []}`))
		if !errors.Is(err, domain.ErrNoProducts) {
			t.Errorf("error = %v, want ErrNoProducts", err)
		}
	})
}
