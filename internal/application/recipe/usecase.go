package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/ports"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/unit"
)

// UseCase operaciones de recetas: consulta, creación manual, generación por
// IA y chequeo de disponibilidad contra la despensa.
type UseCase struct {
	recipeRepo repository.RecipeRepository
	invRepo    repository.InventoryRepository
	notifRepo  repository.NotificationRepository
	generator  ports.RecipeGenerator
}

// NewUseCase construye el caso de uso de recetas.
func NewUseCase(
	recipeRepo repository.RecipeRepository,
	invRepo repository.InventoryRepository,
	notifRepo repository.NotificationRepository,
	generator ports.RecipeGenerator,
) *UseCase {
	return &UseCase{
		recipeRepo: recipeRepo,
		invRepo:    invRepo,
		notifRepo:  notifRepo,
		generator:  generator,
	}
}

// List devuelve las recetas visibles para el usuario (propias y sin dueño).
func (uc *UseCase) List(userID string) ([]dto.RecipeDTO, error) {
	recipes, err := uc.recipeRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeDTO, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeDTO(r, nil))
	}
	return out, nil
}

// Get devuelve una receta con sus ingredientes ordenados.
func (uc *UseCase) Get(recipeID string) (*dto.RecipeDTO, error) {
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
	d := toRecipeDTO(r, ings)
	return &d, nil
}

// Create alta manual de una receta del usuario. Las cantidades pueden llegar
// ya descompuestas o como texto libre que el parser resuelve; un texto no
// parseable deja el ingrediente sin cantidad, nunca falla la creación.
func (uc *UseCase) Create(userID string, in dto.CreateRecipeRequest) (*dto.RecipeDTO, error) {
	if in.Title == "" || len(in.Ingredients) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.Recipe{
		ID:           uuid.New().String(),
		OwnerID:      &userID,
		Title:        in.Title,
		Description:  in.Description,
		Instructions: in.Instructions,
		Servings:     in.Servings,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	ings := make([]*entity.RecipeIngredient, 0, len(in.Ingredients))
	for i, item := range in.Ingredients {
		if item.Name == "" {
			continue
		}
		ing := &entity.RecipeIngredient{
			ID:            uuid.New().String(),
			RecipeID:      r.ID,
			Name:          item.Name,
			QuantityValue: item.Quantity,
			QuantityUnit:  item.Unit,
			SortOrder:     i,
		}
		if ing.QuantityValue == nil && item.QuantityText != "" {
			applyQuantityText(ing, item.QuantityText)
		}
		ings = append(ings, ing)
	}
	if len(ings) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.recipeRepo.Create(r, ings); err != nil {
		return nil, err
	}
	d := toRecipeDTO(r, ings)
	return &d, nil
}

// Generate pide al modelo de texto una receta a partir del resumen de la
// despensa, la persiste sin dueño y deja una notificación entregada que
// habilita al usuario a cocinarla.
func (uc *UseCase) Generate(ctx context.Context, userID string, in dto.GenerateRecipeRequest) (*dto.RecipeDTO, error) {
	items, err := uc.invRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	gen, err := uc.generator.GenerateRecipe(ctx, inventorySummary(items), in)
	if err != nil {
		return nil, err
	}
	if gen == nil || gen.Title == "" || len(gen.Ingredients) == 0 {
		return nil, fmt.Errorf("generación de receta: respuesta incompleta del modelo")
	}

	now := time.Now()
	r := &entity.Recipe{
		ID:           uuid.New().String(),
		OwnerID:      nil, // receta generada: sin dueño
		Title:        gen.Title,
		Description:  gen.Description,
		Instructions: gen.Instructions,
		Servings:     gen.Servings,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	ings := make([]*entity.RecipeIngredient, 0, len(gen.Ingredients))
	for i, gi := range gen.Ingredients {
		if gi.Name == "" {
			continue
		}
		ing := &entity.RecipeIngredient{
			ID:        uuid.New().String(),
			RecipeID:  r.ID,
			Name:      gi.Name,
			SortOrder: i,
		}
		if gi.InventoryID != "" && ownsItem(items, gi.InventoryID) {
			id := gi.InventoryID
			ing.InventoryID = &id
		}
		applyQuantityText(ing, gi.QuantityText)
		ings = append(ings, ing)
	}
	if err := uc.recipeRepo.Create(r, ings); err != nil {
		return nil, err
	}

	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		RecipeID:  &r.ID,
		Title:     "レシピ提案: " + r.Title,
		Body:      r.Description,
		Status:    entity.NotificationStatusDelivered,
		CreatedAt: now,
	}
	if err := uc.notifRepo.Create(n); err != nil {
		return nil, err
	}

	d := toRecipeDTO(r, ings)
	return &d, nil
}

// Availability cruza los ingredientes de la receta contra la despensa actual
// del usuario y devuelve el estado de cada uno.
func (uc *UseCase) Availability(userID, recipeID string) ([]dto.IngredientAvailabilityDTO, error) {
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
	return CheckAvailability(ings, items), nil
}

// applyQuantityText parsea el texto libre de cantidad y, si tiene éxito,
// fija valor y unidad en el ingrediente.
func applyQuantityText(ing *entity.RecipeIngredient, text string) {
	if text == "" {
		return
	}
	parsed := unit.ParseQuantity(text)
	if !parsed.Success {
		return
	}
	q := decimal.NewFromFloat(parsed.Value)
	ing.QuantityValue = &q
	if parsed.Unit != "" {
		u := parsed.Unit
		ing.QuantityUnit = &u
	}
}

// inventorySummary resume la despensa en líneas "名前 数量単位" para el prompt.
func inventorySummary(items []*entity.InventoryItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		line := it.Name
		if it.Quantity != nil {
			line += " " + it.Quantity.String()
			if it.Unit != nil {
				line += *it.Unit
			}
		}
		if it.IsStaple {
			line += " (常備)"
		}
		out = append(out, line)
	}
	return out
}

func ownsItem(items []*entity.InventoryItem, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func toRecipeDTO(r *entity.Recipe, ings []*entity.RecipeIngredient) dto.RecipeDTO {
	d := dto.RecipeDTO{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Instructions: r.Instructions,
		Servings:     r.Servings,
		OwnerID:      r.OwnerID,
		CreatedAt:    r.CreatedAt,
	}
	for _, ing := range ings {
		d.Ingredients = append(d.Ingredients, dto.RecipeIngredientDTO{
			Name:          ing.Name,
			QuantityValue: ing.QuantityValue,
			QuantityUnit:  ing.QuantityUnit,
			SortOrder:     ing.SortOrder,
		})
	}
	return d
}
