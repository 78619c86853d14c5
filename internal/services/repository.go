package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/diewo77/go-devis/internal/models"
	"github.com/diewo77/go-devis/internal/numbering"
)

// Sentinel errors for the repository surface. Every operation that returns
// one leaves the repository state untouched.
var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrNoCurrentQuote = errors.New("no current quote")
)

// QuoteRepository owns the in-memory quote collection and the single
// "current quote" pointer, and glues item mutations to the aggregation pass
// so a stored quote always carries derived fields consistent with its items.
type QuoteRepository struct {
	items  *ItemService
	totals *TotalsService

	scheme   numbering.Config // prefix/separator/date-mode/length template
	validity int              // days a new quote stays valid
	now      func() time.Time

	quotes  map[uuid.UUID]*models.Quote
	order   []uuid.UUID
	current uuid.UUID // uuid.Nil when no quote is being edited

	log *zap.Logger
}

// NewQuoteRepository wires the item store, the aggregation engine and the
// numbering scheme. A nil logger is replaced with a no-op one.
func NewQuoteRepository(items *ItemService, totals *TotalsService, scheme numbering.Config, validityDays int, log *zap.Logger) *QuoteRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteRepository{
		items:    items,
		totals:   totals,
		scheme:   scheme,
		validity: validityDays,
		now:      time.Now,
		quotes:   make(map[uuid.UUID]*models.Quote),
		log:      log,
	}
}

// CreateQuote mints a numbered, empty quote valid for the configured number
// of days, stores it and makes it current.
func (r *QuoteRepository) CreateQuote() *models.Quote {
	today := r.today()
	q := &models.Quote{
		ID:         uuid.New(),
		Number:     numbering.Format(r.nextNumberConfig(today)),
		Date:       today,
		ValidUntil: today.AddDate(0, 0, r.validity),
		Items:      []models.QuoteItem{},
	}
	q.ApplyTotals(r.totals.Compute(nil))
	r.quotes[q.ID] = q
	r.order = append(r.order, q.ID)
	r.current = q.ID
	r.log.Info("quote created",
		zap.String("id", q.ID.String()),
		zap.String("number", q.Number))
	return q
}

// UpdateQuote replaces the stored quote with the same id. This is the sole
// write path: item mutations come back through here (or through the scoped
// item operations below) with freshly derived totals.
func (r *QuoteRepository) UpdateQuote(q *models.Quote) error {
	if q == nil {
		return ErrQuoteNotFound
	}
	if _, ok := r.quotes[q.ID]; !ok {
		return ErrQuoteNotFound
	}
	r.quotes[q.ID] = q
	return nil
}

// DeleteQuote removes the quote. Deleting the current quote leaves no quote
// current. An unknown id is a logged no-op.
func (r *QuoteRepository) DeleteQuote(id uuid.UUID) {
	if _, ok := r.quotes[id]; !ok {
		r.log.Debug("delete ignored, unknown quote", zap.String("id", id.String()))
		return
	}
	delete(r.quotes, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.current == id {
		r.current = uuid.Nil
	}
	r.log.Info("quote deleted", zap.String("id", id.String()))
}

// SetCurrentQuote points the editor at an existing quote.
func (r *QuoteRepository) SetCurrentQuote(id uuid.UUID) error {
	if _, ok := r.quotes[id]; !ok {
		return ErrQuoteNotFound
	}
	r.current = id
	return nil
}

// ClearCurrentQuote leaves no quote current.
func (r *QuoteRepository) ClearCurrentQuote() {
	r.current = uuid.Nil
}

// CurrentQuote returns the quote being edited, if any.
func (r *QuoteRepository) CurrentQuote() (*models.Quote, bool) {
	q, ok := r.quotes[r.current]
	return q, ok
}

// Quotes returns the collection in creation order.
func (r *QuoteRepository) Quotes() []*models.Quote {
	out := make([]*models.Quote, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.quotes[id])
	}
	return out
}

// AddItem appends an item to the current quote. The derived fields are
// refreshed before the call returns; the stored item is returned.
func (r *QuoteRepository) AddItem(item models.QuoteItem) (models.QuoteItem, error) {
	q, ok := r.CurrentQuote()
	if !ok {
		return models.QuoteItem{}, ErrNoCurrentQuote
	}
	list, stored := r.items.Append(q.Items, item)
	r.refresh(q, list)
	r.log.Debug("item added",
		zap.String("quote", q.ID.String()),
		zap.String("item", stored.ID.String()),
		zap.String("type", string(stored.Type)))
	return stored, nil
}

// UpdateItem merges a partial update into an item of the current quote.
func (r *QuoteRepository) UpdateItem(id uuid.UUID, patch ItemPatch) error {
	q, ok := r.CurrentQuote()
	if !ok {
		return ErrNoCurrentQuote
	}
	list, found := r.items.Update(q.Items, id, patch)
	if !found {
		return ErrItemNotFound
	}
	r.refresh(q, list)
	return nil
}

// RemoveItem deletes an item from the current quote. An unknown item id
// leaves the quote untouched.
func (r *QuoteRepository) RemoveItem(id uuid.UUID) error {
	q, ok := r.CurrentQuote()
	if !ok {
		return ErrNoCurrentQuote
	}
	list := r.items.Remove(q.Items, id)
	if len(list) == len(q.Items) {
		return ErrItemNotFound
	}
	r.refresh(q, list)
	return nil
}

// ItemLabels returns the outline labels of the current quote's rows.
func (r *QuoteRepository) ItemLabels() (map[uuid.UUID]string, error) {
	q, ok := r.CurrentQuote()
	if !ok {
		return nil, ErrNoCurrentQuote
	}
	return r.items.Labels(q.Items), nil
}

// refresh re-runs the rollup and aggregation passes and stores the result as
// a single assignment, so readers never observe items and totals produced by
// different passes.
func (r *QuoteRepository) refresh(q *models.Quote, items []models.QuoteItem) {
	items = r.items.Rollup(items)
	q.Items = items
	q.ApplyTotals(r.totals.Compute(items))
}

// today truncates the clock to a calendar date.
func (r *QuoteRepository) today() time.Time {
	now := r.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// nextNumberConfig returns the numbering scheme pointed at today's date
// window, with a sequence one past the highest already issued for the same
// prefix and window (1 when none exists).
func (r *QuoteRepository) nextNumberConfig(today time.Time) numbering.Config {
	cfg := r.scheme
	cfg.Year = today.Year()
	cfg.Month = int(today.Month())
	if cfg.DateMode == numbering.DateModeYear {
		cfg.Month = 0
	}
	max := 0
	for _, q := range r.quotes {
		// Stored numbers are decomposed against the known scheme rather
		// than with the lossy Parse, so empty-separator references still
		// count toward the window.
		if n, ok := numbering.SequenceIn(q.Number, cfg); ok && n > max {
			max = n
		}
	}
	cfg.Sequence = max + 1
	return cfg
}
