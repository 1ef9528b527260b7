package forms

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"fluidtrack-backend/internal/movement"
)

type CreateTransferRequest struct {
	TransferDate         string        `json:"transfer_date"`
	OrderedBy            string        `json:"ordered_by"`
	VerifiedBy           string        `json:"verified_by"`
	SourceWarehouse      string        `json:"source_warehouse"`
	DestinationWarehouse string        `json:"destination_warehouse"`
	DeliveredBy          string        `json:"delivered_by"`
	Operator             string        `json:"operator"`
	Well                 string        `json:"well"`
	Forklift             string        `json:"forklift"`
	Notes                string        `json:"notes"`
	Items                []ItemRequest `json:"items"`
}

// POST /api/transfers
func CreateTransferHandler(deps Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransferRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Forklift == "" {
			body.Forklift = "no"
		}

		doc := movement.NewDocument(movement.TypeTransfer, deps.Transfers.Next(), deps.Catalog)
		sess := movement.NewSession(doc, deps.Submitter)

		sess.SetField("transfer_date", body.TransferDate)
		sess.SetField("ordered_by", body.OrderedBy)
		sess.SetField("verified_by", body.VerifiedBy)
		sess.SetField("source_warehouse", body.SourceWarehouse)
		sess.SetField("destination_warehouse", body.DestinationWarehouse)
		sess.SetField("delivered_by", body.DeliveredBy)
		sess.SetField("operator", body.Operator)
		sess.SetField("well", body.Well)
		sess.SetField("forklift", body.Forklift)
		sess.SetField("notes", body.Notes)
		applyItems(sess, body.Items)

		return finishSubmit(c, sess, deps, func(number int64) string {
			return fmt.Sprintf("Created Transfer: #%d", number)
		})
	}
}
