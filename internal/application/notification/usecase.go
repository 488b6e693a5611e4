package notification

import (
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
)

// UseCase consulta y marca notificaciones del usuario.
type UseCase struct {
	notifRepo repository.NotificationRepository
}

// NewUseCase construye el caso de uso de notificaciones.
func NewUseCase(notifRepo repository.NotificationRepository) *UseCase {
	return &UseCase{notifRepo: notifRepo}
}

// List devuelve las notificaciones del usuario, más reciente primero.
func (uc *UseCase) List(userID string) ([]dto.NotificationDTO, error) {
	ns, err := uc.notifRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationDTO, 0, len(ns))
	for _, n := range ns {
		out = append(out, dto.NotificationDTO{
			ID:        n.ID,
			RecipeID:  n.RecipeID,
			Title:     n.Title,
			Body:      n.Body,
			Status:    n.Status,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca como leída una notificación del usuario. La pertenencia se
// verifica contra la lista: marcar la de otro usuario es ErrForbidden.
func (uc *UseCase) MarkRead(userID, notificationID string) error {
	ns, err := uc.notifRepo.ListByUser(userID)
	if err != nil {
		return err
	}
	for _, n := range ns {
		if n.ID == notificationID {
			return uc.notifRepo.MarkRead(notificationID)
		}
	}
	return domain.ErrNotFound
}
