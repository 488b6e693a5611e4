package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemDTO registro de despensa expuesto por la API.
type InventoryItemDTO struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Quantity   *decimal.Decimal `json:"quantity,omitempty"`
	Unit       *string          `json:"unit,omitempty"`
	IsStaple   bool             `json:"is_staple"`
	ExpiryDate *time.Time       `json:"expiry_date,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CreateInventoryItemRequest body para crear un registro de despensa.
// QuantityText admite expresiones libres ("1/2個", "200ml") que el parser
// descompone cuando Quantity/Unit no vienen ya separados.
type CreateInventoryItemRequest struct {
	Name         string           `json:"name"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	QuantityText string           `json:"quantity_text,omitempty"`
	IsStaple     bool             `json:"is_staple"`
	ExpiryDate   *time.Time       `json:"expiry_date,omitempty"`
}

// BulkCreateInventoryRequest alta masiva (manual o desde OCR de recibo).
type BulkCreateInventoryRequest struct {
	Items []CreateInventoryItemRequest `json:"items"`
}

// UpdateInventoryItemRequest body para editar un registro.
type UpdateInventoryItemRequest struct {
	Name       *string          `json:"name,omitempty"`
	Quantity   *decimal.Decimal `json:"quantity,omitempty"`
	Unit       *string          `json:"unit,omitempty"`
	IsStaple   *bool            `json:"is_staple,omitempty"`
	ExpiryDate *time.Time       `json:"expiry_date,omitempty"`
}

// ScannedItemDTO candidato devuelto por la llamada de visión sobre un recibo.
// QuantityText llega tal cual del modelo ("2個", "300g") y se parsea al
// ingestarlo; un texto no parseable se trata como cantidad ausente.
type ScannedItemDTO struct {
	Name         string `json:"name"`
	QuantityText string `json:"quantity_text"`
	IsStaple     bool   `json:"is_staple"`
}

// ScanReceiptRequest body para POST /api/inventory/scan-receipt.
type ScanReceiptRequest struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// ScanReceiptResponse candidatos detectados y cuántos se insertaron.
type ScanReceiptResponse struct {
	Candidates []ScannedItemDTO   `json:"candidates"`
	Created    []InventoryItemDTO `json:"created"`
}
