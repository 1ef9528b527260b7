package movement

import (
	"context"
	"fmt"
	"time"
)

// Confirmation is what the submission boundary returns for an accepted
// document.
type Confirmation struct {
	Number      int64     `json:"number"`
	Reference   string    `json:"reference"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Submitter is the external boundary that accepts a completed document.
// Implementations must resolve exactly once per call and honor ctx. A real
// backend (database, upstream service) plugs in here without touching any
// form logic.
type Submitter interface {
	Submit(ctx context.Context, doc *Document) (Confirmation, error)
}

// Simulated stands in for the real submission backend: it waits a fixed
// delay and accepts everything. Documents handed to it are discarded.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Submit(ctx context.Context, doc *Document) (Confirmation, error) {
	delay := s.Delay
	if delay <= 0 {
		delay = 2 * time.Second
	}
	select {
	case <-ctx.Done():
		return Confirmation{}, ctx.Err()
	case <-time.After(delay):
	}
	return Confirmation{
		Number:      doc.Number,
		Reference:   fmt.Sprintf("%s-%d", doc.Type, doc.Number),
		SubmittedAt: time.Now(),
	}, nil
}
