package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType selects the rendering and aggregation behaviour of a quote row.
type ItemType string

const (
	ItemTypeTitle     ItemType = "title"
	ItemTypeSubtitle  ItemType = "subtitle"
	ItemTypeSupply    ItemType = "supply"
	ItemTypeLabor     ItemType = "labor"
	ItemTypeWork      ItemType = "work"
	ItemTypeText      ItemType = "text"
	ItemTypePageBreak ItemType = "page_break"
)

// itemTraits describes how one item kind behaves. Adding a kind is a single
// table entry.
type itemTraits struct {
	Billable   bool // carries a quantity × unit price amount
	Structural bool // layout/grouping only
	Numbered   bool // receives a dotted outline label
}

var itemTypeTraits = map[ItemType]itemTraits{
	ItemTypeTitle:     {Structural: true, Numbered: true},
	ItemTypeSubtitle:  {Structural: true, Numbered: true},
	ItemTypeSupply:    {Billable: true, Numbered: true},
	ItemTypeLabor:     {Billable: true, Numbered: true},
	ItemTypeWork:      {Billable: true, Numbered: true},
	ItemTypeText:      {Structural: true},
	ItemTypePageBreak: {Structural: true},
}

// IsBillable reports whether rows of this type contribute quantity × unit
// price to the document totals.
func (t ItemType) IsBillable() bool { return itemTypeTraits[t].Billable }

// IsStructural reports whether rows of this type exist for layout/grouping.
func (t ItemType) IsStructural() bool { return itemTypeTraits[t].Structural }

// IsNumbered reports whether rows of this type receive an outline label.
func (t ItemType) IsNumbered() bool { return itemTypeTraits[t].Numbered }

// Valid reports whether t is one of the known item kinds.
func (t ItemType) Valid() bool {
	_, ok := itemTypeTraits[t]
	return ok
}

// VAT rates applicable to a line item, in percent.
const (
	VATRateZero     = 0
	VATRateReduced  = 10
	VATRateStandard = 20
)

// QuoteItem is one row of the document outline.
type QuoteItem struct {
	ID          uuid.UUID       `json:"id"`
	Designation string          `json:"designation"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Unit        string          `json:"unit"`
	VAT         int             `json:"vat"`
	TotalHT     decimal.Decimal `json:"total_ht"`
	Level       int             `json:"level"`
	Position    int             `json:"position"`
	ParentID    *uuid.UUID      `json:"parent_id,omitempty"`
	Type        ItemType        `json:"type"`
	Details     string          `json:"details,omitempty"`
}

// LineTotal returns quantity × unit price rounded to two decimals (banker's
// rounding) for billable rows, zero for structural rows.
func (it *QuoteItem) LineTotal() decimal.Decimal {
	if !it.Type.IsBillable() {
		return decimal.Zero
	}
	return it.Quantity.Mul(it.UnitPrice).RoundBank(2)
}

// ParseAmount converts free-form user input into a non-negative amount. A
// comma decimal separator is accepted; input that does not parse, or a
// negative amount, is coerced to zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
