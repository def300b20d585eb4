// Package ledger provides the stock ledger: the append-and-mutate log of
// in/out movements that is the source of truth for item stock levels.
//
// The service in this package is the balance maintainer: every create, edit
// and delete of a ledger entry adjusts the referenced item's cached
// current stock inside the same transaction.
package ledger

import (
	"context"
	"time"

	"traso/internal/core/apperror"
	"traso/internal/core/entity"
	"traso/internal/core/id"
	"traso/internal/core/types"
)

// Direction defines movement direction for a ledger entry.
type Direction string

const (
	// DirectionIn increases stock (nhập kho)
	DirectionIn Direction = "in"
	// DirectionOut decreases stock (xuất kho)
	DirectionOut Direction = "out"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Entry represents a single stock movement against an item.
// Unlike accounting journals, entries are mutable: the back office corrects
// typos by editing or deleting them, and the balance maintainer compensates.
type Entry struct {
	entity.BaseDocument

	// ItemID references the stock item this movement applies to
	ItemID id.ID `db:"item_id" json:"itemId"`

	// Direction: in (nhập) or out (xuất)
	Direction Direction `db:"direction" json:"direction"`

	// Quantity moved; always positive, sign comes from Direction
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// UnitPrice is the optional purchase/issue price per unit
	UnitPrice *types.Money `db:"unit_price" json:"unitPrice,omitempty"`

	// TotalPrice is Quantity * UnitPrice, computed when UnitPrice is set
	TotalPrice *types.Money `db:"total_price" json:"totalPrice,omitempty"`

	// Notes is a free-text annotation
	Notes string `db:"notes" json:"notes,omitempty"`

	// EntryDate is the business date of the movement
	EntryDate time.Time `db:"entry_date" json:"entryDate"`
}

// NewEntry creates a ledger entry for the given item.
func NewEntry(itemID id.ID, direction Direction, quantity types.Quantity, entryDate time.Time) *Entry {
	e := &Entry{
		BaseDocument: entity.NewBaseDocument(),
		ItemID:       itemID,
		Direction:    direction,
		Quantity:     quantity,
		EntryDate:    entryDate,
	}
	if e.EntryDate.IsZero() {
		e.EntryDate = time.Now().UTC()
	}
	return e
}

// SignedQuantity returns the quantity with sign based on direction.
// In = positive, out = negative.
func (e *Entry) SignedQuantity() types.Quantity {
	if e.Direction == DirectionOut {
		return e.Quantity.Neg()
	}
	return e.Quantity
}

// ReversalDelta returns the stock adjustment that undoes this entry's effect.
func (e *Entry) ReversalDelta() types.Quantity {
	return e.SignedQuantity().Neg()
}

// ComputeTotal derives TotalPrice from Quantity and UnitPrice.
func (e *Entry) ComputeTotal() {
	if e.UnitPrice == nil {
		e.TotalPrice = nil
		return
	}
	total := e.Quantity.Mul(*e.UnitPrice)
	e.TotalPrice = &total
}

// Validate implements entity.Validatable.
func (e *Entry) Validate(ctx context.Context) error {
	if id.IsNil(e.ItemID) {
		return apperror.NewValidation("item is required").
			WithDetail("field", "itemId")
	}

	if !e.Direction.IsValid() {
		return apperror.NewValidation("direction must be 'in' or 'out'").
			WithDetail("field", "direction").
			WithDetail("value", string(e.Direction))
	}

	if !e.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity").
			WithDetail("value", e.Quantity.String())
	}

	if e.UnitPrice != nil && e.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	if e.EntryDate.IsZero() {
		return apperror.NewValidation("entry date is required").
			WithDetail("field", "entryDate")
	}

	return nil
}

// PricePoint is one row of the price history projection: a ledger entry that
// carries a unit price.
type PricePoint struct {
	Date      time.Time      `db:"entry_date" json:"date"`
	Price     types.Money    `db:"unit_price" json:"price"`
	Direction Direction      `db:"direction" json:"direction"`
	Quantity  types.Quantity `db:"quantity" json:"quantity"`
	Notes     string         `db:"notes" json:"notes,omitempty"`
}
