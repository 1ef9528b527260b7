package options

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/options
func ListActiveHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.ActiveAll())
	}
}

// GET /api/options/master
func ListMasterHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.MasterAll())
	}
}

// PUT /api/options
// Body: {"warehouses": ["Bakersfield", ...], "carriers": [...], ...}
// Replaces the active subset for each category present in the body.
func UpdateActiveHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[Category][]string
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if len(body) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "No option categories in request")
		}
		if err := store.SetActive(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(store.ActiveAll())
	}
}
