package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/diewo77/go-devis/internal/models"
	"github.com/diewo77/go-devis/internal/money"
)

func newTestTotals() *TotalsService {
	return NewTotalsService(10, []string{"chèque", "virement bancaire"},
		money.NewFormatter("fr", "€"))
}

func TestComputeTaxBuckets(t *testing.T) {
	svc := newTestTotals()
	items := []models.QuoteItem{
		{Type: models.ItemTypeTitle, Level: 1, TotalHT: dec(t, "1157.22")}, // display rollup, excluded
		{Type: models.ItemTypeSupply, Level: 2, TotalHT: dec(t, "1058"), VAT: models.VATRateReduced},
		{Type: models.ItemTypeLabor, Level: 2, TotalHT: dec(t, "99.22"), VAT: models.VATRateStandard},
	}

	totals := svc.Compute(items)

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"TotalHT", totals.TotalHT, "1157.22"},
		{"TotalTVA10", totals.TotalTVA10, "105.80"},
		{"TotalTVA20", totals.TotalTVA20, "19.84"},
		{"TotalTTC", totals.TotalTTC, "1282.86"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(t, c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestComputeZeroVATContributesToNoBucket(t *testing.T) {
	svc := newTestTotals()
	items := []models.QuoteItem{
		{Type: models.ItemTypeSupply, Level: 2, TotalHT: dec(t, "200"), VAT: models.VATRateZero},
	}

	totals := svc.Compute(items)

	if !totals.TotalHT.Equal(dec(t, "200")) {
		t.Errorf("TotalHT = %s, want 200", totals.TotalHT)
	}
	if !totals.TotalTVA10.Equal(decimal.Zero) || !totals.TotalTVA20.Equal(decimal.Zero) {
		t.Errorf("VAT buckets = %s, %s, want 0, 0", totals.TotalTVA10, totals.TotalTVA20)
	}
	if !totals.TotalTTC.Equal(totals.TotalHT) {
		t.Errorf("TotalTTC = %s, want equal to HT", totals.TotalTTC)
	}
}

func TestComputeExcludesLevelOne(t *testing.T) {
	svc := newTestTotals()
	items := []models.QuoteItem{
		// Even a billable row at level 1 stays out of the aggregation.
		{Type: models.ItemTypeSupply, Level: 1, TotalHT: dec(t, "500"), VAT: models.VATRateStandard},
	}

	totals := svc.Compute(items)
	if !totals.TotalTTC.Equal(decimal.Zero) {
		t.Errorf("TotalTTC = %s, want 0", totals.TotalTTC)
	}
}

func TestComputeTTCIsSumOfParts(t *testing.T) {
	svc := newTestTotals()
	items := []models.QuoteItem{
		{Type: models.ItemTypeSupply, Level: 2, TotalHT: dec(t, "33.33"), VAT: models.VATRateReduced},
		{Type: models.ItemTypeLabor, Level: 2, TotalHT: dec(t, "66.67"), VAT: models.VATRateStandard},
		{Type: models.ItemTypeWork, Level: 3, TotalHT: dec(t, "10.01"), VAT: models.VATRateZero},
	}

	totals := svc.Compute(items)
	sum := totals.TotalHT.Add(totals.TotalTVA10).Add(totals.TotalTVA20)
	if !totals.TotalTTC.Equal(sum) {
		t.Errorf("TotalTTC = %s, want exact sum %s", totals.TotalTTC, sum)
	}
}

func TestComputePaymentConditions(t *testing.T) {
	svc := newTestTotals()
	items := []models.QuoteItem{
		{Type: models.ItemTypeSupply, Level: 2, TotalHT: dec(t, "1058"), VAT: models.VATRateReduced},
		{Type: models.ItemTypeLabor, Level: 2, TotalHT: dec(t, "99.22"), VAT: models.VATRateStandard},
	}

	note := svc.Compute(items).PaymentConditions

	// TTC 1282.86 → 10% deposit of 128.29, locale decimal separator.
	if !strings.Contains(note, "Deposit of 10%") {
		t.Errorf("note missing deposit clause: %q", note)
	}
	if !strings.Contains(note, "128,29 €") {
		t.Errorf("note missing formatted deposit amount: %q", note)
	}
	if !strings.Contains(note, "chèque, virement bancaire") {
		t.Errorf("note missing payment methods: %q", note)
	}
}

func TestComputeDoesNotMutateItems(t *testing.T) {
	svc := newTestTotals()
	items := []models.QuoteItem{
		{Type: models.ItemTypeSupply, Level: 2, TotalHT: dec(t, "50"), VAT: models.VATRateStandard},
	}
	before := items[0]

	_ = svc.Compute(items)

	if !items[0].TotalHT.Equal(before.TotalHT) || items[0].VAT != before.VAT {
		t.Errorf("Compute mutated the item list")
	}
}
