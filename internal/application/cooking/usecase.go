package cooking

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/match"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/unit"
)

// UseCase marca una receta como cocinada y descuenta sus ingredientes de la
// despensa en una sola transacción. El emparejado corre sobre un snapshot
// previo; el decremento autoritativo relee cada fila bloqueada dentro de la
// transacción, así dos cocciones concurrentes que comparten un ingrediente se
// serializan en vez de pisarse.
type UseCase struct {
	txRunner   TxRunner
	recipeRepo repository.RecipeRepository
	notifRepo  repository.NotificationRepository
	invRepo    repository.InventoryRepository
}

// NewUseCase construye el caso de uso de cocción.
func NewUseCase(
	txRunner TxRunner,
	recipeRepo repository.RecipeRepository,
	notifRepo repository.NotificationRepository,
	invRepo repository.InventoryRepository,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		recipeRepo: recipeRepo,
		notifRepo:  notifRepo,
		invRepo:    invRepo,
	}
}

// plan empareja un ingrediente con su registro de despensa antes de abrir la
// transacción. itemID vacío significa "sin registro".
type plan struct {
	ingredient *entity.RecipeIngredient
	itemID     string
}

// Cook ejecuta la cocción. Si la persistencia falla a mitad, toda la unidad
// de trabajo se revierte: nunca queda la despensa a medio consumir.
func (uc *UseCase) Cook(ctx context.Context, userID, recipeID string) (*dto.CookReportDTO, error) {
	r, err := uc.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.authorize(userID, r); err != nil {
		return nil, err
	}

	ings, err := uc.recipeRepo.ListIngredients(recipeID)
	if err != nil {
		return nil, err
	}
	// Snapshot fuera de transacción: el emparejado tolera datos ligeramente
	// desfasados; la aritmética de descuento no, y relee adentro.
	items, err := uc.invRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	plans := make([]plan, 0, len(ings))
	for _, ing := range ings {
		p := plan{ingredient: ing}
		if it := resolveInventory(ing, items); it != nil {
			p.itemID = it.ID
		}
		plans = append(plans, p)
	}

	report := &dto.CookReportDTO{
		RecipeID:            recipeID,
		Consumed:            []dto.ConsumedIngredientDTO{},
		Skipped:             []dto.SkippedIngredientDTO{},
		DeletedInventoryIDs: []string{},
		Updated:             []dto.UpdatedInventoryDTO{},
	}

	err = uc.txRunner.Run(ctx, func(txInv repository.InventoryRepository) error {
		for _, p := range plans {
			if err := uc.consumeOne(txInv, p, report); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cocción de receta %s: %w", recipeID, err)
	}
	return report, nil
}

// authorize aplica la regla de permiso: dueño de la receta, o receta sin
// dueño con notificación entregada que la referencia.
func (uc *UseCase) authorize(userID string, r *entity.Recipe) error {
	if r.OwnerID != nil {
		if *r.OwnerID == userID {
			return nil
		}
		return domain.ErrForbidden
	}
	ok, err := uc.notifRepo.HasDeliveredForRecipe(userID, r.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// consumeOne descuenta un ingrediente contra su fila bloqueada. Las filas se
// releen con FOR UPDATE: el snapshot del emparejado puede estar viejo.
func (uc *UseCase) consumeOne(txInv repository.InventoryRepository, p plan, report *dto.CookReportDTO) error {
	ing := p.ingredient
	if p.itemID == "" {
		report.Skipped = append(report.Skipped, dto.SkippedIngredientDTO{
			Name: ing.Name, Reason: "sin registro en despensa",
		})
		return nil
	}

	fresh, err := txInv.GetByIDForUpdate(p.itemID)
	if err != nil {
		return err
	}
	if fresh == nil {
		// Otra cocción concurrente la borró entre el snapshot y el lock.
		report.Skipped = append(report.Skipped, dto.SkippedIngredientDTO{
			Name: ing.Name, Reason: "sin registro en despensa",
		})
		return nil
	}
	if fresh.IsStaple {
		report.Skipped = append(report.Skipped, dto.SkippedIngredientDTO{
			Name: ing.Name, Reason: "básico de despensa, no se consume",
		})
		return nil
	}

	invValue, invUnit := fresh.EffectiveQuantity()
	reqValue, reqUnit, ok := ing.RequiredQuantity()
	if !ok {
		// Cantidad ausente en la receta: default explícito de 1 pieza.
		reqValue, reqUnit = 1, unit.CountUnitDefault
	}

	remaining, deducted, mutated := calculateRemaining(invValue, invUnit, reqValue, reqUnit, fresh.Name, ing.Name)
	if !mutated {
		report.Skipped = append(report.Skipped, dto.SkippedIngredientDTO{
			Name: ing.Name, Reason: fmt.Sprintf("unidades incompatibles (%s vs %s), corrección manual", invUnit, reqUnit),
		})
		return nil
	}

	report.Consumed = append(report.Consumed, dto.ConsumedIngredientDTO{
		Name: ing.Name, Quantity: deducted, Unit: invUnit,
	})
	if remaining <= 0 {
		if err := txInv.Delete(fresh.ID); err != nil {
			return err
		}
		report.DeletedInventoryIDs = append(report.DeletedInventoryIDs, fresh.ID)
		return nil
	}
	rem := decimal.NewFromFloat(remaining)
	if err := txInv.UpdateQuantity(fresh.ID, rem); err != nil {
		return err
	}
	u := ""
	if fresh.Unit != nil {
		u = *fresh.Unit
	}
	report.Updated = append(report.Updated, dto.UpdatedInventoryDTO{
		ID: fresh.ID, Name: fresh.Name, Remaining: rem, Unit: u,
	})
	return nil
}

// calculateRemaining aplica la política de descuento:
//
//   - misma unidad canónica: resta directa, piso en 0
//   - unidades convertibles: convierte lo requerido a la unidad de la
//     despensa, resta, piso en 0
//   - no convertibles: política degradada deliberada — ambas de conteo, o
//     despensa de conteo contra masa/volumen requerido ("1本 de leche" vs
//     "200ml"), descuenta exactamente 1 unidad entera; cualquier otra
//     combinación no muta la fila y queda para corrección manual
//
// La rama degradada existe para que nunca se compute 1−200 = negativo y se
// borre un registro por accidente. mutated=false significa "no tocar".
func calculateRemaining(invValue float64, invUnit string, reqValue float64, reqUnit, invName, reqName string) (remaining, deducted float64, mutated bool) {
	inv := unit.Normalize(invUnit)
	req := unit.Normalize(reqUnit)

	if inv.Canonical == req.Canonical && inv.Canonical != "" {
		return floor0(invValue - reqValue), reqValue, true
	}

	name := reqName
	if name == "" {
		name = invName
	}
	if converted, ok := unit.Convert(reqValue, reqUnit, invUnit, name); ok {
		return floor0(invValue - converted), converted, true
	}

	switch {
	case inv.Category == unit.CategoryCount && req.Category == unit.CategoryCount:
		return floor0(invValue - 1), 1, true
	case inv.Category == unit.CategoryCount &&
		(req.Category == unit.CategoryMass || req.Category == unit.CategoryVolume || req.Category == unit.CategorySpoon):
		// Se usó una unidad entera ("1本 de leche" para 200ml).
		return floor0(invValue - 1), 1, true
	default:
		return invValue, 0, false
	}
}

func floor0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// resolveInventory prefiere el vínculo directo capturado al generar la
// receta; si no existe o ya no apunta a nada, usa el emparejador difuso.
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
