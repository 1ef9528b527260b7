package forms

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"fluidtrack-backend/internal/activity"
	"fluidtrack-backend/internal/catalog"
	"fluidtrack-backend/internal/movement"
)

// Deps is everything the form handlers need. The Submitter is injected so
// the simulated backend can be swapped for a real one without touching the
// handlers.
type Deps struct {
	Catalog   *catalog.Catalog
	Activity  *activity.Log
	Submitter movement.Submitter
	Transfers *movement.Sequence
	Receivers *movement.Sequence
	MudMixes  *movement.Sequence
	Invoices  *movement.Sequence
}

// ItemRequest is one submitted item row: the product key and the entered
// quantity. Unit, unit weight and item weight are derived server-side from
// the catalog, never trusted from the client.
type ItemRequest struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
}

type documentResponse struct {
	Number      int64           `json:"number"`
	Type        string          `json:"type"`
	State       string          `json:"state"`
	Reference   string          `json:"reference"`
	SubmittedAt string          `json:"submitted_at"`
	TotalWeight string          `json:"total_weight"`
	ValidItems  int             `json:"valid_items"`
	Items       []movement.Item `json:"items"`
}

// applyItems maps request rows onto the document's item table. The first
// request row reuses the empty row every fresh document starts with.
func applyItems(sess *movement.Session, items []ItemRequest) {
	ids := sess.Document().Items.IDs()
	for i, req := range items {
		var id string
		if i < len(ids) {
			id = ids[i]
		} else {
			id = sess.AddItem()
		}
		sess.UpdateItem(id, movement.ItemFieldProduct, req.Product)
		sess.UpdateItem(id, movement.ItemFieldQuantity, req.Quantity)
	}
}

// finishSubmit validates and submits, then maps the outcome:
// validation failure -> 422 with the field-keyed error map, submitter
// failure -> 502 with the form state preserved for retry, success ->
// activity entry plus a 201 document response.
func finishSubmit(c *fiber.Ctx, sess *movement.Session, deps Deps, message func(number int64) string) error {
	doc := sess.Document()
	conf, err := sess.Submit(c.UserContext())

	var verr *movement.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": verr.Errors,
		})
	case err != nil:
		log.Printf("Error saving %s #%d: %v", doc.Type.Label(), doc.Number, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Submission failed. Your entries were not saved, please try again.",
			"state": sess.State(),
		})
	}

	deps.Activity.Record(activity.ActionCreate, doc.Type.Label(), message(doc.Number))

	return c.Status(fiber.StatusCreated).JSON(documentResponse{
		Number:      doc.Number,
		Type:        string(doc.Type),
		State:       string(sess.State()),
		Reference:   conf.Reference,
		SubmittedAt: conf.SubmittedAt.Format("2006-01-02 15:04:05"),
		TotalWeight: doc.Items.TotalWeightDisplay(),
		ValidItems:  doc.Items.ValidCount(),
		Items:       doc.Items.Items(),
	})
}
