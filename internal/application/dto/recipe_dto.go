package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de disponibilidad de un ingrediente frente a la despensa.
const (
	AvailabilityAvailable = "available" // hay suficiente (o nadie especificó cantidad)
	AvailabilityPartial   = "partial"   // hay registro pero falta cantidad
	AvailabilityMissing   = "missing"   // sin registro que empareje
	AvailabilityUnknown   = "unknown"   // empareja pero las unidades no son comparables
)

// RecipeIngredientDTO ingrediente de receta expuesto por la API.
type RecipeIngredientDTO struct {
	Name          string           `json:"name"`
	QuantityValue *decimal.Decimal `json:"quantity_value,omitempty"`
	QuantityUnit  *string          `json:"quantity_unit,omitempty"`
	SortOrder     int              `json:"sort_order"`
}

// RecipeDTO receta expuesta por la API.
type RecipeDTO struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	Instructions string                `json:"instructions,omitempty"`
	Servings     int                   `json:"servings,omitempty"`
	OwnerID      *string               `json:"owner_id,omitempty"`
	Ingredients  []RecipeIngredientDTO `json:"ingredients,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// CreateRecipeRequest body para crear una receta manualmente.
type CreateRecipeRequest struct {
	Title        string                       `json:"title"`
	Description  string                       `json:"description"`
	Instructions string                       `json:"instructions"`
	Servings     int                          `json:"servings"`
	Ingredients  []CreateRecipeIngredientItem `json:"ingredients"`
}

// CreateRecipeIngredientItem ingrediente dentro de CreateRecipeRequest.
// QuantityText admite expresiones libres que el parser descompone.
type CreateRecipeIngredientItem struct {
	Name         string           `json:"name"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	QuantityText string           `json:"quantity_text,omitempty"`
}

// GenerateRecipeRequest body para POST /api/recipes/generate.
type GenerateRecipeRequest struct {
	Preferences string `json:"preferences,omitempty"` // "和食", "辛いもの", etc.
	Servings    int    `json:"servings,omitempty"`
}

// GeneratedRecipeDTO esqueleto de receta devuelto por el modelo de texto.
type GeneratedRecipeDTO struct {
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	Instructions string                   `json:"instructions"`
	Servings     int                      `json:"servings"`
	Ingredients  []GeneratedIngredientDTO `json:"ingredients"`
}

// GeneratedIngredientDTO ingrediente del esqueleto generado. Quantity llega
// como texto libre ("200ml", "半分") y se parsea al persistir. InventoryID
// referencia el registro de despensa que inspiró el ingrediente, si el modelo
// lo indicó.
type GeneratedIngredientDTO struct {
	Name         string `json:"name"`
	QuantityText string `json:"quantity"`
	InventoryID  string `json:"inventory_id,omitempty"`
}

// IngredientAvailabilityDTO disponibilidad de un ingrediente de receta.
type IngredientAvailabilityDTO struct {
	Name          string   `json:"name"`
	Status        string   `json:"status"` // available | partial | missing | unknown
	InventoryID   string   `json:"inventory_id,omitempty"`
	InventoryName string   `json:"inventory_name,omitempty"`
	Shortage      *float64 `json:"shortage,omitempty"`
	ShortageUnit  string   `json:"shortage_unit,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

// ── Reporte de cocción ────────────────────────────────────────────────────────

// ConsumedIngredientDTO ingrediente consumido al cocinar.
type ConsumedIngredientDTO struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// SkippedIngredientDTO ingrediente no consumido, con motivo (básico de
// despensa, sin registro, unidades incompatibles).
type SkippedIngredientDTO struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// UpdatedInventoryDTO registro decrementado con su cantidad restante.
type UpdatedInventoryDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Remaining decimal.Decimal `json:"remaining"`
	Unit      string          `json:"unit,omitempty"`
}

// CookReportDTO resultado estructurado de marcar una receta como cocinada.
type CookReportDTO struct {
	RecipeID            string                  `json:"recipe_id"`
	Consumed            []ConsumedIngredientDTO `json:"consumed"`
	Skipped             []SkippedIngredientDTO  `json:"skipped"`
	DeletedInventoryIDs []string                `json:"deleted_inventory_ids"`
	Updated             []UpdatedInventoryDTO   `json:"updated"`
}
