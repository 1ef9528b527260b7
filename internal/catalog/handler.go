package catalog

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/catalog
func ListHandler(cat *Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(cat.Entries())
	}
}

// GET /api/catalog/:key
func GetHandler(cat *Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		entry, ok := cat.Lookup(key)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return c.JSON(entry)
	}
}
