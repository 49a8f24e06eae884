package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sellerhub/internal/adapter/http/handlers"
	"sellerhub/internal/adapter/http/handlers/mocks"
	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase"
	"sellerhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuotationRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuotationSagaUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuotationSagaUseCase(ctrl)
	h := handlers.NewQuotationHandler(uc)

	r := gin.New()
	rg := r.Group("/quotation")
	rg.Use(handlers.SellerAuth())
	rg.PUT("/:id/accepted", h.Accept)
	rg.PUT("/:id/rejected", h.Reject)
	rg.PUT("/:id/negotiate", h.Negotiate)
	return r, uc
}

func TestQuotationHandler_Accept(t *testing.T) {
	t.Run("missing seller header", func(t *testing.T) {
		r, _ := newQuotationRouter(t)
		req := httptest.NewRequest(http.MethodPut, "/quotation/q-1/accepted", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("direct accept returns the created ids", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Accept(gomock.Any(), "seller-1", "q-1").Return(usecase.AcceptQuotationResult{
			Transition: entities.TransitionDirectAccept,
			OrderID:    "ord-1",
			InvoiceID:  "inv-1",
			ThreadID:   "th-1",
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/quotation/q-1/accepted", nil)
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["message"] != "Quotation accepted and order created" {
			t.Fatalf("unexpected message %q", body["message"])
		}
		if body["order_id"] != "ord-1" || body["invoice_id"] != "inv-1" || body["chat_id"] != "th-1" {
			t.Fatalf("unexpected ids: %v", body)
		}
	})

	t.Run("negotiated accept has no ids", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Accept(gomock.Any(), "seller-1", "q-1").Return(usecase.AcceptQuotationResult{
			Transition: entities.TransitionNegotiatedAccept,
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/quotation/q-1/accepted", nil)
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["message"] != "Quotation accepted" {
			t.Fatalf("unexpected message %q", body["message"])
		}
		if _, ok := body["order_id"]; ok {
			t.Fatalf("order_id must be omitted: %v", body)
		}
	})

	t.Run("unknown quotation", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Accept(gomock.Any(), "seller-1", "q-404").Return(usecase.AcceptQuotationResult{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodPut, "/quotation/q-404/accepted", nil)
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("terminal quotation conflicts", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Accept(gomock.Any(), "seller-1", "q-1").Return(usecase.AcceptQuotationResult{}, usecase.ErrQuotationTerminal)

		req := httptest.NewRequest(http.MethodPut, "/quotation/q-1/accepted", nil)
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != "QUOTATION_ALREADY_PROCESSED" {
			t.Fatalf("unexpected error code %q", body["code"])
		}
	})
}

func TestQuotationHandler_Reject(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Reject(gomock.Any(), "seller-1", "q-1").Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/quotation/q-1/rejected", nil)
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Negotiate(t *testing.T) {
	t.Run("returns the thread id", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Negotiate(gomock.Any(), "seller-1", "q-1").Return("th-1", nil)

		req := httptest.NewRequest(http.MethodPut, "/quotation/q-1/negotiate", nil)
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["chat_id"] != "th-1" {
			t.Fatalf("unexpected chat id: %v", body)
		}
	})

	t.Run("storage conflict surfaces as 409", func(t *testing.T) {
		r, uc := newQuotationRouter(t)
		uc.EXPECT().Negotiate(gomock.Any(), "seller-1", "q-1").Return("", interfaces.ErrConflict)

		req := httptest.NewRequest(http.MethodPut, "/quotation/q-1/negotiate", nil)
		req.Header.Set("X-Seller-ID", "seller-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
