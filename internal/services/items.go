package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/diewo77/go-devis/internal/models"
)

// maxLevel is the deepest outline level: 1 = section, 2 = sub-section,
// 3 = leaf line.
const maxLevel = 3

// ItemService maintains one quote's ordered item list and its structural
// rules. Methods are list transformations; callers run the rollup and
// aggregation passes on the result before storing the quote.
type ItemService struct{}

func NewItemService() *ItemService { return &ItemService{} }

// Append stores item at the end of the list. It receives a fresh id, the
// next position (max existing + 1) and a line total computed by the leaf
// rule. The stored item is returned alongside the new list.
func (s *ItemService) Append(items []models.QuoteItem, item models.QuoteItem) ([]models.QuoteItem, models.QuoteItem) {
	item.ID = uuid.New()
	item.Position = nextPosition(items)
	item.Level = clampLevel(item.Level)
	item.TotalHT = item.LineTotal()
	return append(items, item), item
}

func nextPosition(items []models.QuoteItem) int {
	max := 0
	for _, it := range items {
		if it.Position > max {
			max = it.Position
		}
	}
	return max + 1
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}

// ItemPatch carries the fields of a partial item update. Nil fields are left
// untouched.
type ItemPatch struct {
	Designation *string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
	Unit        *string
	VAT         *int
	Level       *int
	Type        *models.ItemType
	Details     *string
}

// Update merges patch into the item with the given id and recomputes its
// line total whenever quantity, unit price or type moved. The input list is
// never written through: the match is patched on a copy, like Remove. The
// returned bool is false when no item matches; the list is then returned
// unchanged.
func (s *ItemService) Update(items []models.QuoteItem, id uuid.UUID, patch ItemPatch) ([]models.QuoteItem, bool) {
	for i := range items {
		if items[i].ID != id {
			continue
		}
		out := make([]models.QuoteItem, len(items))
		copy(out, items)
		it := &out[i]
		if patch.Designation != nil {
			it.Designation = *patch.Designation
		}
		if patch.Quantity != nil {
			it.Quantity = *patch.Quantity
		}
		if patch.UnitPrice != nil {
			it.UnitPrice = *patch.UnitPrice
		}
		if patch.Unit != nil {
			it.Unit = *patch.Unit
		}
		if patch.VAT != nil {
			it.VAT = *patch.VAT
		}
		if patch.Level != nil {
			it.Level = clampLevel(*patch.Level)
		}
		if patch.Type != nil {
			it.Type = *patch.Type
		}
		if patch.Details != nil {
			it.Details = *patch.Details
		}
		if patch.Quantity != nil || patch.UnitPrice != nil || patch.Type != nil {
			it.TotalHT = it.LineTotal()
		}
		return out, true
	}
	return items, false
}

// Remove deletes the item with the given id. Remaining positions are left as
// they are: ordering only requires them to be strictly increasing, not
// contiguous. An absent id returns the list untouched.
func (s *ItemService) Remove(items []models.QuoteItem, id uuid.UUID) []models.QuoteItem {
	for i := range items {
		if items[i].ID == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

// Labels computes the dotted outline label of every numbered row ("1",
// "1.1", "1.1.2"). The result is a pure function of the list contents: each
// row's label is its sibling count at its level within the current top-level
// section. Text and page-break rows get no label and do not advance the
// counters. A row whose intermediate level never appeared keeps that counter
// at zero ("1.0.1").
func (s *ItemService) Labels(items []models.QuoteItem) map[uuid.UUID]string {
	ordered := sortedByPosition(items)
	labels := make(map[uuid.UUID]string, len(ordered))
	var counters [maxLevel + 1]int
	for _, it := range ordered {
		if !it.Type.IsNumbered() {
			continue
		}
		lvl := clampLevel(it.Level)
		counters[lvl]++
		for l := lvl + 1; l <= maxLevel; l++ {
			counters[l] = 0
		}
		parts := make([]string, 0, lvl)
		for l := 1; l <= lvl; l++ {
			parts = append(parts, strconv.Itoa(counters[l]))
		}
		labels[it.ID] = strings.Join(parts, ".")
	}
	return labels
}

// Rollup rewrites each level-1 section header's display subtotal as the sum
// of the billable line totals that follow it, up to the next level-1 row. A
// section with no billable rows keeps a zero subtotal. The returned list is
// ordered by position.
func (s *ItemService) Rollup(items []models.QuoteItem) []models.QuoteItem {
	ordered := sortedByPosition(items)
	var head *models.QuoteItem
	sum := decimal.Zero
	flush := func() {
		if head != nil {
			head.TotalHT = sum
		}
	}
	for i := range ordered {
		it := &ordered[i]
		if it.Level <= 1 {
			flush()
			head, sum = nil, decimal.Zero
			if it.Type.IsStructural() && it.Type.IsNumbered() {
				head = it
			}
			continue
		}
		if it.Type.IsBillable() {
			sum = sum.Add(it.TotalHT)
		}
	}
	flush()
	return ordered
}

func sortedByPosition(items []models.QuoteItem) []models.QuoteItem {
	out := make([]models.QuoteItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}
