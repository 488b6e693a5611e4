package repository

import "github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para recetas.
// Las recetas y sus ingredientes son solo lectura para el motor de consumo.
type RecipeRepository interface {
	Create(recipe *entity.Recipe, ingredients []*entity.RecipeIngredient) error
	GetByID(id string) (*entity.Recipe, error)
	ListByUser(userID string) ([]*entity.Recipe, error)
	// ListIngredients devuelve los ingredientes ordenados por sort_order.
	ListIngredients(recipeID string) ([]*entity.RecipeIngredient, error)
	Delete(id string) error
}
