package forms

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"fluidtrack-backend/internal/movement"
)

type CreateMudMixRequest struct {
	OrderDate            string        `json:"order_date"`
	ExpectedDeliveryDate string        `json:"expected_delivery_date"`
	OrderedBy            string        `json:"ordered_by"`
	VerifiedBy           string        `json:"verified_by"`
	MixedBy              string        `json:"mixed_by"`
	BblsMixed            string        `json:"bbls_mixed"`
	FluidType            string        `json:"fluid_type"`
	MudWeight            string        `json:"mud_weight"`
	Viscosity            string        `json:"viscosity"`
	Temp                 string        `json:"temp"`
	Operator             string        `json:"operator"`
	WellName             string        `json:"well_name"`
	DeliveredTo          string        `json:"delivered_to"`
	DeliveredBy          string        `json:"delivered_by"`
	Notes                string        `json:"notes"`
	Items                []ItemRequest `json:"items"`
}

// POST /api/mud-mixes
func CreateMudMixHandler(deps Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMudMixRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		doc := movement.NewDocument(movement.TypeMudMix, deps.MudMixes.Next(), deps.Catalog)
		sess := movement.NewSession(doc, deps.Submitter)

		sess.SetField("order_date", body.OrderDate)
		sess.SetField("expected_delivery_date", body.ExpectedDeliveryDate)
		sess.SetField("ordered_by", body.OrderedBy)
		sess.SetField("verified_by", body.VerifiedBy)
		sess.SetField("mixed_by", body.MixedBy)
		sess.SetField("bbls_mixed", body.BblsMixed)
		sess.SetField("fluid_type", body.FluidType)
		sess.SetField("mud_weight", body.MudWeight)
		sess.SetField("viscosity", body.Viscosity)
		sess.SetField("temp", body.Temp)
		sess.SetField("operator", body.Operator)
		sess.SetField("well_name", body.WellName)
		sess.SetField("delivered_to", body.DeliveredTo)
		sess.SetField("delivered_by", body.DeliveredBy)
		sess.SetField("notes", body.Notes)
		applyItems(sess, body.Items)

		return finishSubmit(c, sess, deps, func(number int64) string {
			// The dashboard has always shown mud mixes without the space.
			return fmt.Sprintf("Created MudMix: #%d", number)
		})
	}
}
