package shopping

import (
	"context"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/recipe"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
)

// ListEntry línea de la lista de compras: un ingrediente faltante o
// incompleto, con el faltante cuantificado cuando se pudo calcular.
type ListEntry struct {
	Name         string
	Status       string // missing | partial
	Shortage     *float64
	ShortageUnit string
}

// PDFGenerator define el puerto de salida para materializar la lista de
// compras como documento.
type PDFGenerator interface {
	GenerateShoppingList(ctx context.Context, recipeTitle string, entries []ListEntry) ([]byte, error)
}

// UseCase arma la lista de compras de una receta: cruza ingredientes contra
// la despensa y exporta en PDF lo que falta.
type UseCase struct {
	recipeRepo repository.RecipeRepository
	invRepo    repository.InventoryRepository
	generator  PDFGenerator
}

// NewUseCase construye el caso de uso de lista de compras.
func NewUseCase(recipeRepo repository.RecipeRepository, invRepo repository.InventoryRepository, generator PDFGenerator) *UseCase {
	return &UseCase{recipeRepo: recipeRepo, invRepo: invRepo, generator: generator}
}

// GeneratePDF devuelve los bytes del PDF con los ingredientes missing/partial
// de la receta. Una receta completamente cubierta produce una lista vacía,
// no un error.
func (uc *UseCase) GeneratePDF(ctx context.Context, userID, recipeID string) ([]byte, error) {
	r, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	ings, err := uc.recipeRepo.ListIngredients(recipeID)
	if err != nil {
		return nil, err
	}
	items, err := uc.invRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	entries := BuildEntries(recipe.CheckAvailability(ings, items))
	return uc.generator.GenerateShoppingList(ctx, r.Title, entries)
}

// BuildEntries filtra el reporte de disponibilidad a lo comprable: lo que
// falta por completo y lo que no alcanza. Los estados available/unknown no
// generan línea.
func BuildEntries(availability []dto.IngredientAvailabilityDTO) []ListEntry {
	entries := make([]ListEntry, 0, len(availability))
	for _, a := range availability {
		switch a.Status {
		case dto.AvailabilityMissing, dto.AvailabilityPartial:
			entries = append(entries, ListEntry{
				Name:         a.Name,
				Status:       a.Status,
				Shortage:     a.Shortage,
				ShortageUnit: a.ShortageUnit,
			})
		}
	}
	return entries
}
