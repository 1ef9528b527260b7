package movement

import (
	"sync"

	"fluidtrack-backend/internal/catalog"
)

// Type identifies the kind of tracking document.
type Type string

const (
	TypeTransfer Type = "transfer"
	TypeReceiver Type = "receiver"
	TypeMudMix   Type = "mud_mix"
	TypeInvoice  Type = "invoice"
)

// Label is the human-readable name used in activity messages and filters.
func (t Type) Label() string {
	switch t {
	case TypeTransfer:
		return "Transfer"
	case TypeReceiver:
		return "Receiver"
	case TypeMudMix:
		return "Mud Mix"
	case TypeInvoice:
		return "Invoice"
	default:
		return string(t)
	}
}

// Document is one in-flight form: header fields, the item table and the
// current validation errors. It lives for a single form visit and is never
// persisted; the Submitter is the boundary a real backend would plug into.
type Document struct {
	Type   Type
	Number int64
	Header map[string]string
	Items  *ItemList
	Errors ValidationErrors
}

func NewDocument(t Type, number int64, cat *catalog.Catalog) *Document {
	return &Document{
		Type:   t,
		Number: number,
		Header: make(map[string]string),
		Items:  NewItemList(cat),
		Errors: ValidationErrors{},
	}
}

// SetField stores a header value and clears only that field's error.
// Clearing is optimistic: the error goes away as soon as the user edits the
// field, whether or not the new value is valid. Full re-validation happens
// on the next submit attempt.
func (d *Document) SetField(name, value string) {
	d.Header[name] = value
	delete(d.Errors, name)
}

func (d *Document) Field(name string) string {
	return d.Header[name]
}

// Sequence hands out display movement numbers for one document type.
// Numbers restart from the configured seed on every boot; they are display
// identifiers, not primary keys.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

func NewSequence(seed int64) *Sequence {
	return &Sequence{next: seed}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return n
}
