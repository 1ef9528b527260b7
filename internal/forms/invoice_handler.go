package forms

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"fluidtrack-backend/internal/activity"
	"fluidtrack-backend/internal/movement"
)

type CreateInvoiceRequest struct {
	Notes string `json:"notes"`
}

type invoiceResponse struct {
	TicketNumber int64  `json:"ticket_number"`
	State        string `json:"state"`
	IssuedAt     string `json:"issued_at"`
	CompanyLine  string `json:"company_line"`
	Notes        string `json:"notes"`
}

const companyLine = "1431 Union Avenue • Bakersfield, CA 93305 • Telephone (661) 325-5919 • Email: geodf@geodf.com"

// POST /api/invoices
// The invoice form has no validated fields; a successful submission issues
// a delivery ticket number.
func CreateInvoiceHandler(deps Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInvoiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		doc := movement.NewDocument(movement.TypeInvoice, deps.Invoices.Next(), deps.Catalog)
		sess := movement.NewSession(doc, deps.Submitter)
		sess.SetField("notes", body.Notes)

		conf, err := sess.Submit(c.UserContext())
		var verr *movement.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"errors": verr.Errors,
			})
		case err != nil:
			log.Printf("Error saving Invoice #%d: %v", doc.Number, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Submission failed. Your entries were not saved, please try again.",
				"state": sess.State(),
			})
		}

		deps.Activity.Record(activity.ActionCreate, doc.Type.Label(),
			fmt.Sprintf("Created Movement: #%d", doc.Number))

		return c.Status(fiber.StatusCreated).JSON(invoiceResponse{
			TicketNumber: doc.Number,
			State:        string(sess.State()),
			IssuedAt:     conf.SubmittedAt.Format("2006-01-02 15:04:05"),
			CompanyLine:  companyLine,
			Notes:        body.Notes,
		})
	}
}
