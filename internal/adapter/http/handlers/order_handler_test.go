package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sellerhub/internal/adapter/http/handlers"
	"sellerhub/internal/adapter/http/handlers/mocks"
	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := handlers.NewOrderHandler(uc)

	r := gin.New()
	rg := r.Group("/order")
	rg.Use(handlers.SellerAuth())
	rg.GET("/:id", h.Get)
	rg.PUT("/:id/status", h.UpdateStatus)
	return r, uc
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("missing seller header", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		req := httptest.NewRequest(http.MethodPut, "/order/ord-1/status", strings.NewReader(`{"status":"processing"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		req := httptest.NewRequest(http.MethodPut, "/order/ord-1/status", strings.NewReader(`{}`))
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("advances the pipeline", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "seller-1", "ord-1", usecase.UpdateOrderStatusInput{
			Status:         entities.OrderStatusShipped,
			TrackingNumber: "TRK-42",
		}).Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusShipped, TrackingNumber: "TRK-42"}, nil)

		body := `{"status":"shipped","tracking_number":"TRK-42"}`
		req := httptest.NewRequest(http.MethodPut, "/order/ord-1/status", strings.NewReader(body))
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["status"] != "shipped" || res["tracking_number"] != "TRK-42" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("illegal move conflicts", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "seller-1", "ord-1", gomock.Any()).Return(entities.Order{}, usecase.ErrIllegalOrderStatus)

		req := httptest.NewRequest(http.MethodPut, "/order/ord-1/status", strings.NewReader(`{"status":"delivered"}`))
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["code"] != "ILLEGAL_ORDER_STATUS" {
			t.Fatalf("unexpected error code %q", res["code"])
		}
	})
}

func TestOrderHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "seller-1", "ord-1").Return(entities.Order{
			ID:          "ord-1",
			OrderNumber: "ORD-20260831-ABCDEF12",
			Status:      entities.OrderStatusConfirmed,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/order/ord-1", nil)
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["order_number"] != "ORD-20260831-ABCDEF12" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "seller-1", "ord-404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/order/ord-404", nil)
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
