package recipe

import (
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/match"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/unit"
)

// CheckAvailability cruza los ingredientes de una receta contra la despensa y
// clasifica cada uno en uno de cuatro estados:
//
//	available — hay registro y alcanza (o nadie especificó cantidad)
//	partial   — hay registro pero falta cantidad
//	missing   — ningún registro empareja
//	unknown   — empareja pero las unidades no son comparables
//
// Función pura sobre snapshots; tolera datos ligeramente desfasados porque no
// muta nada.
func CheckAvailability(ingredients []*entity.RecipeIngredient, items []*entity.InventoryItem) []dto.IngredientAvailabilityDTO {
	out := make([]dto.IngredientAvailabilityDTO, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, availabilityOf(ing, items))
	}
	return out
}

func availabilityOf(ing *entity.RecipeIngredient, items []*entity.InventoryItem) dto.IngredientAvailabilityDTO {
	item := resolveInventory(ing, items)
	if item == nil {
		return dto.IngredientAvailabilityDTO{Name: ing.Name, Status: dto.AvailabilityMissing}
	}

	res := dto.IngredientAvailabilityDTO{
		Name:          ing.Name,
		InventoryID:   item.ID,
		InventoryName: item.Name,
	}

	reqValue, reqUnit, hasRequired := ing.RequiredQuantity()
	if !hasRequired {
		// Emparejó y la receta no especifica cantidad: alcanza.
		res.Status = dto.AvailabilityAvailable
		return res
	}

	invValue, invUnit := item.EffectiveQuantity()
	cmp := unit.Compare(
		unit.Measured{Value: invValue, Unit: invUnit, Name: item.Name},
		unit.Measured{Value: reqValue, Unit: reqUnit, Name: ing.Name},
	)
	switch {
	case !cmp.CanCompare:
		res.Status = dto.AvailabilityUnknown
		res.Reason = cmp.Reason
	case cmp.IsEnough:
		res.Status = dto.AvailabilityAvailable
	default:
		res.Status = dto.AvailabilityPartial
		shortage := cmp.Shortage
		res.Shortage = &shortage
		res.ShortageUnit = cmp.ShortageUnit
	}
	return res
}

// resolveInventory prefiere el vínculo directo capturado al generar la receta
// y recurre al emparejador difuso si no existe o ya no apunta a nada.
func resolveInventory(ing *entity.RecipeIngredient, items []*entity.InventoryItem) *entity.InventoryItem {
	if ing.InventoryID != nil {
		for _, it := range items {
			if it.ID == *ing.InventoryID {
				return it
			}
		}
	}
	return match.FindMatch(ing.Name, items)
}
