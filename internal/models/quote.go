package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Totals is the complete derived block of a quote: the four monetary totals
// plus the payment-conditions note. It is produced and applied as one value
// so no reader can observe a half-updated quote.
type Totals struct {
	TotalHT           decimal.Decimal `json:"total_ht"`
	TotalTVA10        decimal.Decimal `json:"total_tva_10"`
	TotalTVA20        decimal.Decimal `json:"total_tva_20"`
	TotalTTC          decimal.Decimal `json:"total_ttc"`
	PaymentConditions string          `json:"payment_conditions"`
}

// Quote is one priced proposal document (devis).
type Quote struct {
	ID         uuid.UUID  `json:"id"`
	Number     string     `json:"number"`
	Date       time.Time  `json:"date"`
	ValidUntil time.Time  `json:"valid_until"`
	ClientID   *uuid.UUID `json:"client_id,omitempty"`
	ProjectID  *uuid.UUID `json:"project_id,omitempty"`

	// Items are owned exclusively by this quote, ordered by Position.
	Items []QuoteItem `json:"items"`

	// Derived fields, owned by the aggregation pass. Never hand-edited.
	Totals

	Description string `json:"description,omitempty"`
	Footer      string `json:"footer,omitempty"`
}

// ApplyTotals replaces the whole derived block in a single assignment.
func (q *Quote) ApplyTotals(t Totals) {
	q.Totals = t
}
