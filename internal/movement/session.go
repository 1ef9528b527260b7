package movement

import "context"

// State of a form's submission flow.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// ValidationError carries the field-keyed error map for a submit attempt
// that never reached the submitter.
type ValidationError struct {
	Errors ValidationErrors
}

func (e *ValidationError) Error() string {
	return "document failed validation"
}

// Sentinel errors for the submission flow.
var (
	ErrSubmitInFlight = errorString("a submission is already in progress")
	ErrSessionClosed  = errorString("form session is closed")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// Session is the controller for one open form: it owns the document, drives
// the Idle -> Submitting -> {Succeeded, Failed} state machine and guards
// against a submission resolving after the form is gone. All mutation
// happens from the single request handling the form, so there is no lock.
type Session struct {
	doc       *Document
	submitter Submitter
	state     State
	closed    bool
}

func NewSession(doc *Document, submitter Submitter) *Session {
	return &Session{doc: doc, submitter: submitter, state: StateIdle}
}

func (s *Session) Document() *Document { return s.doc }
func (s *Session) State() State        { return s.state }

// SetField edits a header field, clearing that field's error optimistically.
func (s *Session) SetField(name, value string) {
	s.doc.SetField(name, value)
}

// AddItem appends an empty item row and returns its id.
func (s *Session) AddItem() string {
	return s.doc.Items.Add()
}

// UpdateItem edits one item row; editing clears a pending items error the
// same way editing a header field clears its own.
func (s *Session) UpdateItem(id, field string, value any) {
	s.doc.Items.Update(id, field, value)
	delete(s.doc.Errors, itemsErrorKey)
}

// RemoveItem deletes a row, keeping the at-least-one-row invariant.
func (s *Session) RemoveItem(id string) error {
	return s.doc.Items.Remove(id)
}

// Close tears the session down. A submission still in flight will have its
// result discarded.
func (s *Session) Close() {
	s.closed = true
}

// Submit runs the full flow: validate, hand the document to the submitter,
// record the outcome. Invalid documents never reach the submitter; the
// attempt returns a *ValidationError and the state stays Idle. A failed
// submission leaves every entered value untouched and the session ready for
// a retry.
func (s *Session) Submit(ctx context.Context) (Confirmation, error) {
	if s.closed {
		return Confirmation{}, ErrSessionClosed
	}
	if s.state == StateSubmitting {
		return Confirmation{}, ErrSubmitInFlight
	}

	if ok, errs := s.doc.Validate(); !ok {
		return Confirmation{}, &ValidationError{Errors: errs}
	}

	s.state = StateSubmitting
	conf, err := s.submitter.Submit(ctx, s.doc)

	if s.closed {
		// The form was torn down while the submitter was running; drop the
		// late result instead of mutating dead state.
		s.state = StateIdle
		return Confirmation{}, ErrSessionClosed
	}

	if err != nil {
		s.state = StateFailed
		return Confirmation{}, err
	}
	s.state = StateSucceeded
	return conf, nil
}
