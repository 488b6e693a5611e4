package postgres

import (
	"context"
	"fmt"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, recipe_id, title, body, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.UserID, n.RecipeID, n.Title, n.Body, n.Status, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByUser devuelve las notificaciones del usuario, más reciente primero.
func (r *NotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, recipe_id, title, body, status, created_at
		FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.RecipeID, &n.Title, &n.Body, &n.Status, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("list notifications: scan: %w", err)
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

// HasDeliveredForRecipe indica si el usuario tiene una notificación entregada
// (o ya leída) que referencia la receta.
func (r *NotificationRepo) HasDeliveredForRecipe(userID, recipeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1 AND recipe_id = $2 AND status IN ('delivered', 'read')
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, userID, recipeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check delivered notification: %w", err)
	}
	return exists, nil
}

// MarkRead marca la notificación como leída.
func (r *NotificationRepo) MarkRead(id string) error {
	query := `UPDATE notifications SET status = 'read' WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
