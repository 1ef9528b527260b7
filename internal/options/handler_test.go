package options

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func testOptionsApp(store *Store) *fiber.App {
	app := fiber.New()
	app.Get("/api/options", ListActiveHandler(store))
	app.Get("/api/options/master", ListMasterHandler(store))
	app.Put("/api/options", UpdateActiveHandler(store))
	return app
}

func TestListActiveHandler(t *testing.T) {
	app := testOptionsApp(NewStore(testMaster()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/options", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body["warehouses"]) != 3 {
		t.Errorf("warehouses = %v", body["warehouses"])
	}
}

func TestUpdateActiveHandler(t *testing.T) {
	store := NewStore(testMaster())
	app := testOptionsApp(store)

	req := httptest.NewRequest(http.MethodPut, "/api/options",
		strings.NewReader(`{"warehouses": ["Williston"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body["warehouses"]) != 1 || body["warehouses"][0] != "Williston" {
		t.Errorf("warehouses = %v", body["warehouses"])
	}
	if got := store.Active(CategoryWarehouses); len(got) != 1 {
		t.Errorf("store not updated: %v", got)
	}
}

func TestUpdateActiveHandlerRejectsBadRequests(t *testing.T) {
	app := testOptionsApp(NewStore(testMaster()))

	tests := []struct {
		name string
		body string
	}{
		{"empty_object", `{}`},
		{"unknown_category", `{"colors": ["red"]}`},
		{"value_outside_master", `{"warehouses": ["Area 51"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/options", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestMasterHandlerUnaffectedByUpdates(t *testing.T) {
	store := NewStore(testMaster())
	app := testOptionsApp(store)

	if err := store.SetActive(map[Category][]string{CategoryWarehouses: {"Odessa"}}); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/options/master", nil))
	if err != nil {
		t.Fatal(err)
	}
	var body map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body["warehouses"]) != 3 {
		t.Errorf("master warehouses = %v, want all 3", body["warehouses"])
	}
}
