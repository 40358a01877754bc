package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/glowgen/backend/internal/domain"
)

// productInput accepts both workflow input shapes: a {"products": [...]}
// document or a single bare product object.
type productInput struct {
	Products []json.RawMessage `json:"products"`
}

// ParseProducts decodes raw workflow input into normalized product records.
// Absent fields decode to empty strings, which is the shape the comparison
// engine requires. Product IDs are assigned sequentially.
func ParseProducts(data []byte) ([]domain.ProductRecord, error) {
	var wrapper productInput
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidProduct, err)
	}

	raw := wrapper.Products
	if raw == nil {
		// Single-product shape.
		raw = []json.RawMessage{data}
	}

	products := make([]domain.ProductRecord, 0, len(raw))
	for i, msg := range raw {
		var product domain.ProductRecord
		if err := json.Unmarshal(msg, &product); err != nil {
			return nil, fmt.Errorf("%w: product %d: %v", domain.ErrInvalidProduct, i+1, err)
		}
		product.ProductID = fmt.Sprintf("GLOW_%03d", i+1)
		products = append(products, product)
	}

	if len(products) == 0 {
		return nil, domain.ErrNoProducts
	}

	return products, nil
}
