package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste la receta con sus ingredientes.
func (r *RecipeRepo) Create(recipe *entity.Recipe, ingredients []*entity.RecipeIngredient) error {
	query := `
		INSERT INTO recipes (id, owner_id, title, description, instructions, servings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.OwnerID, recipe.Title, recipe.Description,
		recipe.Instructions, recipe.Servings, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}

	ingQuery := `
		INSERT INTO recipe_ingredients (id, recipe_id, inventory_id, name, quantity_value, quantity_unit, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, ing := range ingredients {
		_, err := r.q.Exec(context.Background(), ingQuery,
			ing.ID, ing.RecipeID, ing.InventoryID, ing.Name,
			ing.QuantityValue, ing.QuantityUnit, ing.SortOrder,
		)
		if err != nil {
			return fmt.Errorf("insert recipe ingredient: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una receta por ID; nil si no existe.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	query := `
		SELECT id, owner_id, title, description, instructions, servings, created_at, updated_at
		FROM recipes WHERE id = $1`
	var rec entity.Recipe
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.OwnerID, &rec.Title, &rec.Description,
		&rec.Instructions, &rec.Servings, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &rec, nil
}

// ListByUser devuelve las recetas propias del usuario y las generadas sin
// dueño que una notificación le entregó.
func (r *RecipeRepo) ListByUser(userID string) ([]*entity.Recipe, error) {
	query := `
		SELECT DISTINCT r.id, r.owner_id, r.title, r.description, r.instructions, r.servings, r.created_at, r.updated_at
		FROM recipes r
		LEFT JOIN notifications n ON n.recipe_id = r.id AND n.user_id = $1 AND n.status IN ('delivered', 'read')
		WHERE r.owner_id = $1 OR (r.owner_id IS NULL AND n.id IS NOT NULL)
		ORDER BY r.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(
			&rec.ID, &rec.OwnerID, &rec.Title, &rec.Description,
			&rec.Instructions, &rec.Servings, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("list recipes: scan: %w", err)
		}
		recipes = append(recipes, &rec)
	}
	return recipes, rows.Err()
}

// ListIngredients devuelve los ingredientes de la receta ordenados por sort_order.
func (r *RecipeRepo) ListIngredients(recipeID string) ([]*entity.RecipeIngredient, error) {
	query := `
		SELECT id, recipe_id, inventory_id, name, quantity_value, quantity_unit, sort_order
		FROM recipe_ingredients WHERE recipe_id = $1
		ORDER BY sort_order ASC`
	rows, err := r.q.Query(context.Background(), query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()

	var ings []*entity.RecipeIngredient
	for rows.Next() {
		var ing entity.RecipeIngredient
		if err := rows.Scan(
			&ing.ID, &ing.RecipeID, &ing.InventoryID, &ing.Name,
			&ing.QuantityValue, &ing.QuantityUnit, &ing.SortOrder,
		); err != nil {
			return nil, fmt.Errorf("list recipe ingredients: scan: %w", err)
		}
		ings = append(ings, &ing)
	}
	return ings, rows.Err()
}

// Delete elimina la receta; los ingredientes caen por ON DELETE CASCADE.
func (r *RecipeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}
