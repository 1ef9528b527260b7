package forms

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"fluidtrack-backend/internal/movement"
)

type CreateReceiverRequest struct {
	ReceiptDate          string        `json:"receipt_date"`
	Vendor               string        `json:"vendor"`
	BOL                  string        `json:"bol"`
	VerifiedBy           string        `json:"verified_by"`
	DestinationWarehouse string        `json:"destination_warehouse"`
	DeliveredBy          string        `json:"delivered_by"`
	Notes                string        `json:"notes"`
	Items                []ItemRequest `json:"items"`
}

// POST /api/receivers
func CreateReceiverHandler(deps Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateReceiverRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		doc := movement.NewDocument(movement.TypeReceiver, deps.Receivers.Next(), deps.Catalog)
		sess := movement.NewSession(doc, deps.Submitter)

		sess.SetField("receipt_date", body.ReceiptDate)
		sess.SetField("vendor", body.Vendor)
		sess.SetField("bol", body.BOL)
		sess.SetField("verified_by", body.VerifiedBy)
		sess.SetField("destination_warehouse", body.DestinationWarehouse)
		sess.SetField("delivered_by", body.DeliveredBy)
		sess.SetField("notes", body.Notes)
		applyItems(sess, body.Items)

		return finishSubmit(c, sess, deps, func(number int64) string {
			return fmt.Sprintf("Created Receiver: #%d", number)
		})
	}
}
