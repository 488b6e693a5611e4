package cooking

import (
	"context"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción y le entrega un repositorio
// de despensa ligado a ella. Si fn devuelve error la transacción se revierte;
// si no, se confirma. Los decrementos de cocción deben pasar por aquí para
// que fallar a mitad no deje la despensa a medio consumir.
type TxRunner interface {
	Run(ctx context.Context, fn func(invRepo repository.InventoryRepository) error) error
}
