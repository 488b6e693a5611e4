package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe una receta del usuario o generada por IA.
// OwnerID nil significa receta sin dueño (generada automáticamente); el
// permiso de cocinarla depende entonces de una notificación entregada.
type Recipe struct {
	ID           string
	OwnerID      *string
	Title        string
	Description  string
	Instructions string
	Servings     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecipeIngredient un ingrediente de receta. Solo lectura para el motor de
// consumo: nunca se muta. InventoryID es el vínculo directo a la despensa
// capturado al generar la receta, si existe.
type RecipeIngredient struct {
	ID            string
	RecipeID      string
	InventoryID   *string
	Name          string
	QuantityValue *decimal.Decimal
	QuantityUnit  *string
	SortOrder     int
}

// RequiredQuantity devuelve la cantidad requerida con la unidad cruda.
// ok=false cuando el ingrediente no especifica cantidad.
func (ri *RecipeIngredient) RequiredQuantity() (value float64, rawUnit string, ok bool) {
	if ri.QuantityValue == nil {
		return 0, "", false
	}
	unit := ""
	if ri.QuantityUnit != nil {
		unit = *ri.QuantityUnit
	}
	return ri.QuantityValue.InexactFloat64(), unit, true
}
