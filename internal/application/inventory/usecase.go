package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/dto"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/ports"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/entity"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/repository"
	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/domain/unit"
)

// UseCase operaciones de despensa: CRUD, alta masiva, caducidad próxima e
// ingesta por OCR de recibos. Las mutaciones de cocción viven en el paquete
// cooking; aquí solo ediciones directas del usuario.
type UseCase struct {
	invRepo repository.InventoryRepository
	scanner ports.ReceiptScanner
}

// NewUseCase construye el caso de uso de despensa.
func NewUseCase(invRepo repository.InventoryRepository, scanner ports.ReceiptScanner) *UseCase {
	return &UseCase{invRepo: invRepo, scanner: scanner}
}

// List devuelve la despensa completa del usuario.
func (uc *UseCase) List(userID string) ([]dto.InventoryItemDTO, error) {
	items, err := uc.invRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	return out, nil
}

// ListExpiring devuelve los registros que caducan dentro de withinDays días.
func (uc *UseCase) ListExpiring(userID string, withinDays int) ([]dto.InventoryItemDTO, error) {
	if withinDays <= 0 {
		withinDays = 3
	}
	items, err := uc.invRepo.ListExpiring(userID, withinDays)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	return out, nil
}

// Create alta de un registro. Si la cantidad llega como texto libre
// ("1/2個") el parser la descompone; un texto no parseable se trata como
// cantidad ausente, nunca como error.
func (uc *UseCase) Create(userID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemDTO, error) {
	item, err := buildItem(userID, in)
	if err != nil {
		return nil, err
	}
	if err := uc.invRepo.Create(item); err != nil {
		return nil, err
	}
	d := toItemDTO(item)
	return &d, nil
}

// BulkCreate alta masiva. Entradas sin nombre se descartan en silencio
// (frecuentes en candidatos de OCR).
func (uc *UseCase) BulkCreate(userID string, in dto.BulkCreateInventoryRequest) ([]dto.InventoryItemDTO, error) {
	items := make([]*entity.InventoryItem, 0, len(in.Items))
	for _, req := range in.Items {
		item, err := buildItem(userID, req)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.invRepo.CreateBatch(items); err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	return out, nil
}

// Update edición parcial con control de pertenencia.
func (uc *UseCase) Update(userID, itemID string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemDTO, error) {
	item, err := uc.invRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Quantity != nil {
		item.Quantity = in.Quantity
	}
	if in.Unit != nil {
		item.Unit = in.Unit
	}
	if in.IsStaple != nil {
		item.IsStaple = *in.IsStaple
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = in.ExpiryDate
	}
	item.UpdatedAt = time.Now()
	if err := uc.invRepo.Update(item); err != nil {
		return nil, err
	}
	d := toItemDTO(item)
	return &d, nil
}

// Delete baja con control de pertenencia.
func (uc *UseCase) Delete(userID, itemID string) error {
	item, err := uc.invRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.invRepo.Delete(itemID)
}

// ScanReceipt envía la imagen del recibo a la llamada de visión externa e
// inserta los candidatos devueltos como registros de despensa del usuario.
func (uc *UseCase) ScanReceipt(ctx context.Context, userID string, in dto.ScanReceiptRequest) (*dto.ScanReceiptResponse, error) {
	if in.ImageBase64 == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	candidates, err := uc.scanner.ScanReceipt(ctx, in.ImageBase64, in.MimeType)
	if err != nil {
		return nil, err
	}

	bulk := dto.BulkCreateInventoryRequest{}
	for _, c := range candidates {
		bulk.Items = append(bulk.Items, dto.CreateInventoryItemRequest{
			Name:         c.Name,
			QuantityText: c.QuantityText,
			IsStaple:     c.IsStaple,
		})
	}
	created := []dto.InventoryItemDTO{}
	if len(bulk.Items) > 0 {
		created, err = uc.BulkCreate(userID, bulk)
		if err != nil && err != domain.ErrInvalidInput {
			return nil, err
		}
	}
	return &dto.ScanReceiptResponse{Candidates: candidates, Created: created}, nil
}

// buildItem materializa el request en entidad, parseando la cantidad libre.
func buildItem(userID string, in dto.CreateInventoryItemRequest) (*entity.InventoryItem, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       in.Name,
		Quantity:   in.Quantity,
		Unit:       in.Unit,
		IsStaple:   in.IsStaple,
		ExpiryDate: in.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if item.Quantity == nil && in.QuantityText != "" {
		if parsed := unit.ParseQuantity(in.QuantityText); parsed.Success {
			q := decimal.NewFromFloat(parsed.Value)
			item.Quantity = &q
			if item.Unit == nil && parsed.Unit != "" {
				u := parsed.Unit
				item.Unit = &u
			}
		}
	}
	return item, nil
}

func toItemDTO(it *entity.InventoryItem) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		ID:         it.ID,
		Name:       it.Name,
		Quantity:   it.Quantity,
		Unit:       it.Unit,
		IsStaple:   it.IsStaple,
		ExpiryDate: it.ExpiryDate,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}
