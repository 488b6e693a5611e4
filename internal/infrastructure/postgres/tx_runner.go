package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/cooking"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
)

// Ensure TxRunner implements cooking.TxRunner.
var _ cooking.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con el repo de despensa atado a la
// tx y hace Commit o Rollback. Los SELECT FOR UPDATE dentro de fn retienen
// sus locks hasta el cierre de la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(invRepo repository.InventoryRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
