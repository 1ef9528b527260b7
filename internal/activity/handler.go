package activity

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type entryResponse struct {
	Type      Action `json:"type"`
	Movement  string `json:"movement"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type pageResponse struct {
	Entries    []entryResponse `json:"entries"`
	Total      int             `json:"total"`
	Filtered   int             `json:"filtered"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

func queryFromCtx(c *fiber.Ctx) Query {
	return Query{
		Search:   c.Query("search"),
		Action:   c.Query("type"),
		Movement: c.Query("movement"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", defaultPageSize),
	}
}

// GET /api/activity?search=&type=&movement=&page=&page_size=
func ListHandler(al *Log) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := al.Find(queryFromCtx(c))

		entries := make([]entryResponse, 0, len(page.Entries))
		for _, e := range page.Entries {
			entries = append(entries, entryResponse{
				Type:      e.Action,
				Movement:  e.Movement,
				Message:   e.Message,
				Timestamp: e.Timestamp(),
			})
		}

		return c.JSON(pageResponse{
			Entries:    entries,
			Total:      page.Total,
			Filtered:   page.Filtered,
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: page.TotalPages,
		})
	}
}

// GET /api/activity/export/csv
// Exports the filtered set, not just the current page.
func ExportCSVHandler(al *Log) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries := al.Filtered(queryFromCtx(c))

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="activity_log.csv"`)
		if err := WriteCSV(c.Response().BodyWriter(), entries); err != nil {
			log.Println("CSV export failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "CSV export failed")
		}
		return nil
	}
}

// GET /api/activity/export/xlsx
func ExportXLSXHandler(al *Log) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries := al.Filtered(queryFromCtx(c))

		f, err := BuildXLSX(entries)
		if err != nil {
			log.Println("XLSX export failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "XLSX export failed")
		}
		defer f.Close()

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="activity_log.xlsx"`)
		if err := f.Write(c.Response().BodyWriter()); err != nil {
			log.Println("XLSX export failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "XLSX export failed")
		}
		return nil
	}
}
