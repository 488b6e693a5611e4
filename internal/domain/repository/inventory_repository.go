package repository

import (
	"github.com/shopspring/decimal"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para la despensa (DIP).
// El emparejado tolera un snapshot ligeramente desfasado (ListByUser fuera de
// transacción); el decremento autoritativo debe releer cada fila dentro de la
// transacción con GetByIDForUpdate.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	CreateBatch(items []*entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	// GetByIDForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Serializa cocciones concurrentes que comparten un ingrediente.
	GetByIDForUpdate(id string) (*entity.InventoryItem, error)
	ListByUser(userID string) ([]*entity.InventoryItem, error)
	ListExpiring(userID string, withinDays int) ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	UpdateQuantity(id string, quantity decimal.Decimal) error
	Delete(id string) error
}
