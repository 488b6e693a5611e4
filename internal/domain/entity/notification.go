package entity

import "time"

// Estados de una notificación.
const (
	NotificationStatusPending   = "pending"
	NotificationStatusDelivered = "delivered"
	NotificationStatusRead      = "read"
)

// Notification aviso al usuario; cuando referencia una receta generada sin
// dueño, su entrega habilita al destinatario a cocinarla.
type Notification struct {
	ID        string
	UserID    string
	RecipeID  *string
	Title     string
	Body      string
	Status    string
	CreatedAt time.Time
}
