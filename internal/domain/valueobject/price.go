package valueobject

import (
	"fmt"

	"github.com/sponsoring-app/sponsoring-backend/internal/pkg/apperror"
)

// PriceRange opisuje cenę opcji sponsoringu: stałą albo widełkową (price_to).
type PriceRange struct {
	Price   float64
	PriceTo *float64
}

func NewPriceRange(price float64, priceTo *float64) (PriceRange, error) {
	if price < 0 {
		return PriceRange{}, apperror.New(apperror.ErrCodeValidation, "cena nie może być ujemna")
	}
	if priceTo != nil && *priceTo < price {
		return PriceRange{}, apperror.New(apperror.ErrCodeValidation, "górna granica ceny nie może być niższa od dolnej")
	}
	return PriceRange{Price: price, PriceTo: priceTo}, nil
}

func (p PriceRange) String() string {
	if p.PriceTo != nil {
		return fmt.Sprintf("%.2f - %.2f PLN", p.Price, *p.PriceTo)
	}
	return fmt.Sprintf("%.2f PLN", p.Price)
}
