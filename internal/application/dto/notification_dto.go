package dto

import "time"

// NotificationDTO notificación expuesta por la API. RecipeID enlaza la
// receta generada cuando la notificación es una propuesta de cocina.
type NotificationDTO struct {
	ID        string    `json:"id"`
	RecipeID  *string   `json:"recipe_id,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
