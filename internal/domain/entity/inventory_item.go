package entity

import (
	"time"

	"github.com/shopspring/decimal"

	unitpkg "github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/unit"
)

// InventoryItem representa un alimento en la despensa del usuario.
// Quantity y Unit son opcionales: nil significa "cantidad no registrada" y el
// motor los trata como 1 pieza ("個") en el paso explícito de defaults.
// IsStaple marca condimentos básicos (sal, aceite) que cocinar nunca consume.
type InventoryItem struct {
	ID         string
	UserID     string
	Name       string
	Quantity   *decimal.Decimal
	Unit       *string
	IsStaple   bool
	ExpiryDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EffectiveQuantity devuelve la cantidad y unidad con defaults aplicados:
// cantidad nil -> 1, unidad nil o vacía -> unidad de pieza "個". Así el
// comparador puro siempre recibe valores completos.
func (i *InventoryItem) EffectiveQuantity() (float64, string) {
	value := 1.0
	if i.Quantity != nil {
		value = i.Quantity.InexactFloat64()
	}
	unit := ""
	if i.Unit != nil {
		unit = *i.Unit
	}
	if unit == "" {
		unit = unitpkg.CountUnitDefault
	}
	return value, unit
}
