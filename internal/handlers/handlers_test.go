package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atharvakonge/investment-tracker/internal/models"
	"github.com/atharvakonge/investment-tracker/internal/portfolio"
	"github.com/atharvakonge/investment-tracker/internal/store"
	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T, st store.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := portfolio.NewService(st)
	ep := NewExitProcessor(svc, 1)
	ep.Start()
	t.Cleanup(ep.Stop)
	h := NewHandler(svc, ep)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/stocks", h.AddStock)
	api.GET("/stocks/active", h.GetActiveStocks)
	api.PATCH("/stocks/:id", h.UpdateStock)
	api.DELETE("/stocks/:id", h.DeleteStock)
	api.POST("/stocks/:id/exit", h.ExitStock)
	api.POST("/assets", h.AddAsset)
	api.GET("/portfolio/summary", h.GetPortfolioSummary)
	api.GET("/portfolio/pnl", h.GetPNLAnalytics)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddStockEndpoint_Success(t *testing.T) {
	router := setupRouter(t, store.NewMemoryStore())

	w := doJSON(router, "POST", "/api/stocks",
		`{"name":"RELIANCE","quantity":10,"buy_price":2500,"buy_date":"2024-01-15"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp["stock_id"] == "" || resp["stock_id"] == nil {
		t.Error("Expected a stock_id in the response")
	}
}

func TestAddStockEndpoint_RejectsBadBody(t *testing.T) {
	router := setupRouter(t, store.NewMemoryStore())

	// Binding rejects the non-positive quantity before the engine runs.
	w := doJSON(router, "POST", "/api/stocks",
		`{"name":"RELIANCE","quantity":-1,"buy_price":2500,"buy_date":"2024-01-15"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestExitEndpoint_OverExitIs400(t *testing.T) {
	st := store.NewMemoryStore()
	router := setupRouter(t, st)

	id, err := st.InsertStock(models.StockPosition{
		Name: "SBIN", Quantity: 10, BuyPrice: 600, BuyDate: "2024-01-01", IsActive: true,
	})
	if err != nil {
		t.Fatalf("Failed to seed stock: %v", err)
	}

	w := doJSON(router, "POST", "/api/stocks/"+id+"/exit",
		`{"exit_price":650,"exit_date":"2024-02-01","exit_quantity":11}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for over-exit, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExitEndpoint_UnknownIDIs404(t *testing.T) {
	router := setupRouter(t, store.NewMemoryStore())

	w := doJSON(router, "POST", "/api/stocks/missing/exit",
		`{"exit_price":650,"exit_date":"2024-02-01"}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestDeleteEndpoint_UnknownIDIs404(t *testing.T) {
	router := setupRouter(t, store.NewMemoryStore())

	w := doJSON(router, "DELETE", "/api/stocks/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestAddAssetEndpoint_RequiredForTypeFields(t *testing.T) {
	router := setupRouter(t, store.NewMemoryStore())

	// Bonds without bond_type is rejected at the boundary.
	w := doJSON(router, "POST", "/api/assets",
		`{"type":"bonds","name":"Gilt","invested_amount":5000}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bonds without bond_type, got %d", w.Code)
	}

	// With the field present it goes through.
	w = doJSON(router, "POST", "/api/assets",
		`{"type":"bonds","name":"Gilt","invested_amount":5000,"bond_type":"government"}`)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

// brokenStore fails every operation; aggregates must still render as
// zero structures rather than surfacing a 500.
type brokenStore struct{}

var errBroken = errors.New("store unavailable")

func (brokenStore) InsertStock(models.StockPosition) (string, error) { return "", errBroken }
func (brokenStore) GetStock(string) (models.StockPosition, error) {
	return models.StockPosition{}, errBroken
}
func (brokenStore) PatchStock(string, models.StockPatch) error { return errBroken }
func (brokenStore) DeleteStock(string) error                   { return errBroken }
func (brokenStore) ScanStocks(func(models.StockPosition) bool) ([]models.StockPosition, error) {
	return nil, errBroken
}
func (brokenStore) ApplyExit(string, float64, models.StockPosition) error { return errBroken }
func (brokenStore) InsertAsset(models.Asset) (string, error)              { return "", errBroken }
func (brokenStore) GetAsset(string) (models.Asset, error)                 { return models.Asset{}, errBroken }
func (brokenStore) PatchAsset(string, models.AssetPatch) error            { return errBroken }
func (brokenStore) DeleteAsset(string) error                              { return errBroken }
func (brokenStore) ScanAssets(func(models.Asset) bool) ([]models.Asset, error) {
	return nil, errBroken
}

func TestSummaryEndpoint_StoreFailureRendersZero(t *testing.T) {
	router := setupRouter(t, brokenStore{})

	w := doJSON(router, "GET", "/api/portfolio/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 with zero summary, got %d", w.Code)
	}

	var summary models.PortfolioSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if summary != (models.PortfolioSummary{}) {
		t.Errorf("Expected all-zero summary on store failure, got %+v", summary)
	}
}

func TestPNLEndpoint_StoreFailureRendersZero(t *testing.T) {
	router := setupRouter(t, brokenStore{})

	w := doJSON(router, "GET", "/api/portfolio/pnl", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 with zero analytics, got %d", w.Code)
	}

	var analytics models.PNLAnalytics
	if err := json.Unmarshal(w.Body.Bytes(), &analytics); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if analytics.TotalTrades != 0 || analytics.BestTrade != nil || analytics.WorstTrade != nil {
		t.Errorf("Expected canonical empty analytics on store failure, got %+v", analytics)
	}
}

func TestMutationEndpoint_StoreFailureIs500(t *testing.T) {
	router := setupRouter(t, brokenStore{})

	// Mutations propagate store failures, unlike aggregate queries.
	w := doJSON(router, "POST", "/api/stocks",
		`{"name":"RELIANCE","quantity":10,"buy_price":2500,"buy_date":"2024-01-15"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", w.Code)
	}
}
