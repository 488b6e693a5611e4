package ports

import (
	"context"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
)

// ReceiptScanner define el puerto de salida para la llamada de visión que
// extrae candidatos de alimento desde la imagen de un recibo. Cualquier
// adaptador (Gemini, mock) debe implementar esta interfaz; la aplicación solo
// conoce este contrato (DIP).
type ReceiptScanner interface {
	// ScanReceipt analiza la imagen (base64) y devuelve candidatos con nombre
	// y cantidad en texto libre. El contexto debe llevar timeout para no
	// bloquear en la llamada externa.
	ScanReceipt(ctx context.Context, imageBase64, mimeType string) ([]dto.ScannedItemDTO, error)
}

// RecipeGenerator define el puerto de salida para la generación de recetas:
// recibe el resumen de la despensa actual y devuelve un esqueleto de receta
// con cantidades en texto libre.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, inventorySummary []string, req dto.GenerateRecipeRequest) (*dto.GeneratedRecipeDTO, error)
}
