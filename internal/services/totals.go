package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diewo77/go-devis/internal/models"
	"github.com/diewo77/go-devis/internal/money"
)

var (
	rateReduced  = decimal.New(10, -2) // 0.10
	rateStandard = decimal.New(20, -2) // 0.20
)

// TotalsService derives the tax-bucketed totals and the payment-conditions
// note from an item list. It never mutates the items it reads.
type TotalsService struct {
	depositPct int
	deposit    decimal.Decimal
	methods    []string
	display    *money.Formatter
}

// NewTotalsService configures the engine with the deposit percentage, the
// accepted payment methods and the amount formatter for the note.
func NewTotalsService(depositPercent int, methods []string, display *money.Formatter) *TotalsService {
	return &TotalsService{
		depositPct: depositPercent,
		deposit:    decimal.New(int64(depositPercent), -2),
		methods:    methods,
		display:    display,
	}
}

// Compute runs one pass over items and returns the complete derived block.
// Only rows with Level > 1 participate: level-1 rows carry display rollups
// of their descendants and would double the total. Per-bucket VAT sums are
// rounded to two decimals; TTC is the exact sum of the rounded parts.
func (s *TotalsService) Compute(items []models.QuoteItem) models.Totals {
	ht, tva10, tva20 := decimal.Zero, decimal.Zero, decimal.Zero
	for _, it := range items {
		if it.Level <= 1 {
			continue
		}
		ht = ht.Add(it.TotalHT)
		switch it.VAT {
		case models.VATRateReduced:
			tva10 = tva10.Add(it.TotalHT.Mul(rateReduced))
		case models.VATRateStandard:
			tva20 = tva20.Add(it.TotalHT.Mul(rateStandard))
		}
	}
	t := models.Totals{
		TotalHT:    ht,
		TotalTVA10: tva10.RoundBank(2),
		TotalTVA20: tva20.RoundBank(2),
	}
	t.TotalTTC = t.TotalHT.Add(t.TotalTVA10).Add(t.TotalTVA20)
	t.PaymentConditions = s.paymentConditions(t.TotalTTC)
	return t
}

// paymentConditions renders the fixed note: the deposit amount derived from
// the TTC total, then the accepted payment methods.
func (s *TotalsService) paymentConditions(ttc decimal.Decimal) string {
	deposit := ttc.Mul(s.deposit).RoundBank(2)
	var b strings.Builder
	fmt.Fprintf(&b, "Deposit of %d%% = %s", s.depositPct, s.display.FormatWithCurrency(deposit))
	b.WriteString("\nAccepted payment methods: ")
	b.WriteString(strings.Join(s.methods, ", "))
	return b.String()
}
