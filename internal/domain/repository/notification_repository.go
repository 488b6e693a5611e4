package repository

import "github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListByUser(userID string) ([]*entity.Notification, error)
	// HasDeliveredForRecipe indica si el usuario tiene una notificación
	// entregada que referencia la receta (habilita cocinar recetas sin dueño).
	HasDeliveredForRecipe(userID, recipeID string) (bool, error)
	MarkRead(id string) error
}
