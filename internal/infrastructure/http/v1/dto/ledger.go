package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"traso/internal/core/id"
	"traso/internal/domain/ledger"
)

// StockEntryResponse is the API view of a ledger entry.
type StockEntryResponse struct {
	ID         string           `json:"id"`
	ItemID     string           `json:"itemId"`
	Direction  string           `json:"direction"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unitPrice,omitempty"`
	TotalPrice *decimal.Decimal `json:"totalPrice,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	EntryDate  time.Time        `json:"entryDate"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	Version    int              `json:"version"`
}

// FromStockEntry maps a ledger entry to its API view.
func FromStockEntry(e *ledger.Entry) StockEntryResponse {
	return StockEntryResponse{
		ID:         e.ID.String(),
		ItemID:     e.ItemID.String(),
		Direction:  string(e.Direction),
		Quantity:   e.Quantity,
		UnitPrice:  e.UnitPrice,
		TotalPrice: e.TotalPrice,
		Notes:      e.Notes,
		EntryDate:  e.EntryDate,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
		Version:    e.Version,
	}
}

// CreateStockEntryRequest records a stock movement.
type CreateStockEntryRequest struct {
	ItemID    string           `json:"itemId" binding:"required,uuid"`
	Direction string           `json:"direction" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	Notes     string           `json:"notes"`
	EntryDate time.Time        `json:"entryDate"`
}

// ToEntity maps the request to a new ledger entry.
func (r CreateStockEntryRequest) ToEntity() (*ledger.Entry, error) {
	itemID, err := id.Parse(r.ItemID)
	if err != nil {
		return nil, err
	}
	e := ledger.NewEntry(itemID, ledger.Direction(r.Direction), r.Quantity, r.EntryDate)
	e.UnitPrice = r.UnitPrice
	e.Notes = r.Notes
	return e, nil
}

// UpdateStockEntryRequest replaces an entry's content. Full replacement, not a
// patch: an edit re-states the movement.
type UpdateStockEntryRequest struct {
	ItemID    string           `json:"itemId" binding:"required,uuid"`
	Direction string           `json:"direction" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	Notes     string           `json:"notes"`
	EntryDate time.Time        `json:"entryDate" binding:"required"`
	Version   int              `json:"version" binding:"required,min=1"`
}

// ApplyTo rewrites the entry with the request content.
func (r UpdateStockEntryRequest) ApplyTo(e *ledger.Entry) error {
	itemID, err := id.Parse(r.ItemID)
	if err != nil {
		return err
	}
	e.ItemID = itemID
	e.Direction = ledger.Direction(r.Direction)
	e.Quantity = r.Quantity
	e.UnitPrice = r.UnitPrice
	e.Notes = r.Notes
	e.EntryDate = r.EntryDate
	e.Version = r.Version
	return nil
}

// PricePointResponse is one row of an item's price history.
type PricePointResponse struct {
	Date      time.Time       `json:"date"`
	Price     decimal.Decimal `json:"price"`
	Direction string          `json:"direction"`
	Quantity  decimal.Decimal `json:"quantity"`
	Notes     string          `json:"notes,omitempty"`
}

// FromPricePoint maps a price projection row to its API view.
func FromPricePoint(p ledger.PricePoint) PricePointResponse {
	return PricePointResponse{
		Date:      p.Date,
		Price:     p.Price,
		Direction: string(p.Direction),
		Quantity:  p.Quantity,
		Notes:     p.Notes,
	}
}
