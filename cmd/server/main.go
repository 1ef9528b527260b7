package main

import (
	"log"
	"strings"

	"fluidtrack-backend/internal/activity"
	"fluidtrack-backend/internal/catalog"
	"fluidtrack-backend/internal/config"
	"fluidtrack-backend/internal/forms"
	"fluidtrack-backend/internal/movement"
	"fluidtrack-backend/internal/options"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	cat := loadCatalog(cfg)
	optionStore := loadOptions(cfg, cat)
	activityLog := activity.NewLog()

	deps := forms.Deps{
		Catalog:   cat,
		Activity:  activityLog,
		Submitter: movement.Simulated{Delay: cfg.SubmitDelay},
		Transfers: movement.NewSequence(cfg.TransferSeq),
		Receivers: movement.NewSequence(cfg.ReceiverSeq),
		MudMixes:  movement.NewSequence(cfg.MudMixSeq),
		Invoices:  movement.NewSequence(cfg.InvoiceSeq),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Product catalog (read-only reference data)
	api.Get("/catalog", catalog.ListHandler(cat))
	api.Get("/catalog/:key", catalog.GetHandler(cat))

	// Dropdown options
	api.Get("/options", options.ListActiveHandler(optionStore))
	api.Get("/options/master", options.ListMasterHandler(optionStore))
	api.Put("/options", options.UpdateActiveHandler(optionStore))

	// Tracking forms
	api.Post("/transfers", forms.CreateTransferHandler(deps))
	api.Post("/receivers", forms.CreateReceiverHandler(deps))
	api.Post("/mud-mixes", forms.CreateMudMixHandler(deps))
	api.Post("/invoices", forms.CreateInvoiceHandler(deps))

	// Dashboard activity feed
	api.Get("/activity", activity.ListHandler(activityLog))
	api.Get("/activity/export/csv", activity.ExportCSVHandler(activityLog))
	api.Get("/activity/export/xlsx", activity.ExportXLSXHandler(activityLog))

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}

func loadCatalog(cfg *config.Config) *catalog.Catalog {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}
	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Catalog load failed: %v", err)
	}
	log.Printf("Catalog loaded from %s (%d products)", cfg.CatalogPath, cat.Len())
	return cat
}

func loadOptions(cfg *config.Config, cat *catalog.Catalog) *options.Store {
	master := options.DefaultMaster()
	if cfg.OptionsPath != "" {
		loaded, err := options.LoadMasterFile(cfg.OptionsPath, master)
		if err != nil {
			log.Fatalf("Options load failed: %v", err)
		}
		master = loaded
	}
	// The products dropdown always mirrors the loaded catalog.
	master[options.CategoryProducts] = cat.DisplayNames()
	return options.NewStore(master)
}
