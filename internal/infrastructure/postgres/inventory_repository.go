package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, user_id, name, quantity, unit, is_staple, expiry_date, created_at, updated_at`

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de despensa. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un registro de despensa.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, user_id, name, quantity, unit, is_staple, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.Name, item.Quantity, item.Unit,
		item.IsStaple, item.ExpiryDate, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// CreateBatch inserta varios registros (alta masiva de OCR). Inserta fila a
// fila: SendBatch no está en Querier y el volumen típico es un recibo.
func (r *InventoryRepo) CreateBatch(items []*entity.InventoryItem) error {
	for _, item := range items {
		if err := r.Create(item); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene un registro por ID; nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(query, id, "get inventory item")
}

// GetByIDForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// Serializa cocciones concurrentes que comparten un ingrediente.
func (r *InventoryRepo) GetByIDForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "get inventory item for update")
}

// ListByUser devuelve la despensa completa del usuario, más reciente primero.
func (r *InventoryRepo) ListByUser(userID string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items WHERE user_id = $1
		ORDER BY created_at DESC`
	return r.scanMany(query, "list inventory", userID)
}

// ListExpiring devuelve los registros que caducan dentro de withinDays días,
// más urgente primero. Los registros sin fecha de caducidad no aparecen.
func (r *InventoryRepo) ListExpiring(userID string, withinDays int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE user_id = $1
		  AND expiry_date IS NOT NULL
		  AND expiry_date <= CURRENT_DATE + $2 * INTERVAL '1 day'
		ORDER BY expiry_date ASC`
	return r.scanMany(query, "list expiring inventory", userID, withinDays)
}

// Update actualiza todos los campos editables de un registro.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, quantity = $3, unit = $4, is_staple = $5, expiry_date = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.Unit, item.IsStaple, item.ExpiryDate, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// UpdateQuantity persiste sólo la cantidad (decremento de cocción).
func (r *InventoryRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	query := `UPDATE inventory_items SET quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// Delete elimina un registro.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepo) scanOne(query, id, op string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.UserID, &it.Name, &it.Quantity, &it.Unit,
		&it.IsStaple, &it.ExpiryDate, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

func (r *InventoryRepo) scanMany(query, op string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.Name, &it.Quantity, &it.Unit,
			&it.IsStaple, &it.ExpiryDate, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
