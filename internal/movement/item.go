package movement

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fluidtrack-backend/internal/catalog"
)

// Item field names accepted by ItemList.Update.
const (
	ItemFieldProduct    = "product"
	ItemFieldQuantity   = "quantity"
	ItemFieldUnit       = "unit"
	ItemFieldUnitWeight = "unit_weight"
)

// ErrLastItem: a document must keep at least one item row.
var ErrLastItem = errors.New("cannot remove the last item row")

// Item is one line of a document. Unit, UnitWeight and ProductID are
// denormalized from the catalog when a product is selected; ItemWeight is
// always UnitWeight * Quantity and never set directly.
type Item struct {
	ID         string  `json:"id"`
	ProductKey string  `json:"product_key"`
	ProductID  string  `json:"product_id"`
	Unit       string  `json:"unit"`
	UnitWeight float64 `json:"unit_weight"`
	Quantity   float64 `json:"quantity"`
	ItemWeight float64 `json:"item_weight"`
	Warning    string  `json:"warning,omitempty"`
}

// ItemList is the ordered item table of a single document. It is owned by
// one document and mutated only from that document's request; it is not
// safe for concurrent use and does not need to be.
type ItemList struct {
	cat   *catalog.Catalog
	items []Item
}

// NewItemList starts with one empty row, matching how a fresh form opens.
func NewItemList(cat *catalog.Catalog) *ItemList {
	l := &ItemList{cat: cat}
	l.Add()
	return l
}

// Add appends an empty row and returns its id. There is no row limit.
func (l *ItemList) Add() string {
	id := uuid.NewString()
	l.items = append(l.items, Item{ID: id})
	return id
}

// Update mutates exactly the row matched by id; an unknown id is a no-op.
//
// A product change re-resolves against the catalog: the empty key is a
// deliberate reset and zeroes the derived fields, a known key overwrites
// them, an unknown key keeps the last resolved values and records a
// non-blocking warning on the row. A quantity change always recomputes the
// item weight, even with no product selected. Any other field is a plain
// overwrite with no recomputation.
func (l *ItemList) Update(id, field string, value any) {
	i := l.index(id)
	if i < 0 {
		return
	}
	it := &l.items[i]

	switch field {
	case ItemFieldProduct:
		key, _ := value.(string)
		l.applyProduct(it, key)
	case ItemFieldQuantity:
		q, ok := toFloat(value)
		if !ok {
			return
		}
		it.Quantity = q
		it.ItemWeight = it.UnitWeight * it.Quantity
	case ItemFieldUnit:
		if s, ok := value.(string); ok {
			it.Unit = s
		}
	case ItemFieldUnitWeight:
		if f, ok := toFloat(value); ok {
			it.UnitWeight = f
		}
	}
}

func (l *ItemList) applyProduct(it *Item, key string) {
	if key == "" {
		it.ProductKey = ""
		it.ProductID = ""
		it.Unit = ""
		it.UnitWeight = 0
		it.ItemWeight = 0
		it.Warning = ""
		return
	}

	it.ProductKey = key
	entry, ok := l.cat.Lookup(key)
	if !ok {
		// Keep the last resolved unit and weight; the miss is surfaced
		// as a row warning instead of failing the edit.
		it.Warning = fmt.Sprintf("unknown product %q", key)
		return
	}
	it.ProductID = entry.ProductID
	it.Unit = entry.Unit
	it.UnitWeight = entry.UnitWeight
	it.Warning = ""
	if it.Quantity > 0 {
		it.ItemWeight = it.UnitWeight * it.Quantity
	}
}

// Remove deletes the matched row. The list never drops below one row; an
// unknown id is a no-op.
func (l *ItemList) Remove(id string) error {
	i := l.index(id)
	if i < 0 {
		return nil
	}
	if len(l.items) == 1 {
		return ErrLastItem
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// TotalWeight sums item weights at full precision. Round only for display.
func (l *ItemList) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.items {
		total = total.Add(decimal.NewFromFloat(it.ItemWeight))
	}
	return total
}

// TotalWeightDisplay is the total rounded to 2 decimals, e.g. "578000.00".
func (l *ItemList) TotalWeightDisplay() string {
	return l.TotalWeight().StringFixed(2)
}

// ValidCount reports how many rows have both a product and a quantity.
func (l *ItemList) ValidCount() int {
	n := 0
	for _, it := range l.items {
		if it.ProductKey != "" && it.Quantity > 0 {
			n++
		}
	}
	return n
}

// Items returns a copy of the rows in insertion order.
func (l *ItemList) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// IDs returns the row ids in insertion order.
func (l *ItemList) IDs() []string {
	out := make([]string, len(l.items))
	for i, it := range l.items {
		out[i] = it.ID
	}
	return out
}

func (l *ItemList) Len() int {
	return len(l.items)
}

func (l *ItemList) index(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
