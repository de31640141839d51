package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/app/cache"
	"backend/internal/app/config"
	"backend/internal/app/dto"
	"backend/internal/app/middleware"
	"backend/internal/app/notify"
	"backend/internal/app/pdf"
	"backend/internal/app/repository"
	"backend/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter поднимает полный HTTP стек на sqlite in-memory.
// Redis и MinIO в тестах отсутствуют: blacklist пропускается, архив отключен.
func newTestRouter(t *testing.T) (*gin.Engine, *service.PrintOrderService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	repo, err := repository.NewWithDB(db)
	if err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Token:         "test-secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}

	svc := service.NewPrintOrderService(repo, cache.New(time.Minute, 10), notify.NewLogNotifier())
	authHandler := NewAuthHandler(repo, nil, cfg)
	apiHandler := NewAPIHandler(svc, pdf.NewMarotoRenderer(), nil, authHandler)

	router := gin.New()
	apiHandler.RegisterAPIRoutes(router, middleware.NewAuthMiddleware(nil, cfg))
	return router, svc
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedEntry(t *testing.T, svc *service.PrintOrderService) {
	t.Helper()
	_, err := svc.CreatePriceTable(service.CreatePriceTableInput{
		ProductType: "business_card",
		Quantity:    100,
		Price:       5000,
		DesignFee:   1000,
	})
	if err != nil {
		t.Fatalf("failed to seed price table: %v", err)
	}
}

func TestPingEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/ping", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestEstimateEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	seedEntry(t, svc)

	w := doJSON(t, router, http.MethodPost, "/api/print-orders/estimate", gin.H{
		"product_type":    "business_card",
		"quantity":        100,
		"design_required": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.EstimatedPrice != 6000 {
		t.Errorf("expected 6000, got %d", resp.EstimatedPrice)
	}
	if resp.Breakdown.DesignFee != 1000 {
		t.Errorf("expected design fee 1000, got %d", resp.Breakdown.DesignFee)
	}
}

func TestEstimateEndpointNoPriceEntry(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/print-orders/estimate", gin.H{
		"product_type": "poster",
		"quantity":     10,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	seedEntry(t, svc)

	w := doJSON(t, router, http.MethodPost, "/api/print-orders", gin.H{
		"clinic_name":  "Sakura Dental",
		"email":        "clinic@example.com",
		"pattern":      "reorder",
		"product_type": "business_card",
		"quantity":     100,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.EstimatedPrice == nil || *resp.EstimatedPrice != 5000 {
		t.Errorf("expected estimated price 5000, got %v", resp.EstimatedPrice)
	}
	if resp.OrderStatus != "submitted" {
		t.Errorf("expected submitted, got %s", resp.OrderStatus)
	}
}

func TestCreateOrderEndpointBadPattern(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/print-orders", gin.H{
		"clinic_name": "Sakura Dental",
		"email":       "clinic@example.com",
		"pattern":     "walk-in",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/print-orders/missing-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestApproveAndCancelFlow(t *testing.T) {
	router, svc := newTestRouter(t)
	seedEntry(t, svc)

	w := doJSON(t, router, http.MethodPost, "/api/print-orders", gin.H{
		"clinic_name":  "Sakura Dental",
		"email":        "clinic@example.com",
		"pattern":      "reorder",
		"product_type": "business_card",
		"quantity":     100,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	w = doJSON(t, router, http.MethodPost, "/api/print-orders/"+order.ID+"/approve", gin.H{
		"payment_method": "invoice",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/print-orders/"+order.ID+"/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Вторая отмена: заказ уже в терминальном статусе
	w = doJSON(t, router, http.MethodPost, "/api/print-orders/"+order.ID+"/cancel", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateOrderRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/print-orders/some-id", gin.H{
		"order_status": "shipped",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestEstimatePDFEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	seedEntry(t, svc)

	w := doJSON(t, router, http.MethodPost, "/api/print-orders", gin.H{
		"clinic_name":  "Sakura Dental",
		"email":        "clinic@example.com",
		"pattern":      "reorder",
		"product_type": "business_card",
		"quantity":     100,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	w = doJSON(t, router, http.MethodGet, "/api/print-orders/"+order.ID+"/estimate-pdf", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("expected non-empty PDF body")
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected PDF magic header")
	}
}

func TestPriceTablesEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	seedEntry(t, svc)

	w := doJSON(t, router, http.MethodGet, "/api/price-tables", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.PriceTableListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected 1 entry, got %d", resp.Total)
	}

	// Создание без токена администратора запрещено
	w = doJSON(t, router, http.MethodPost, "/api/price-tables", gin.H{
		"product_type": "flyer",
		"quantity":     1000,
		"price":        20000,
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
