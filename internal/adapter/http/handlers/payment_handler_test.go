package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"duka_payments/internal/adapter/http/handlers"
	"duka_payments/internal/adapter/http/handlers/mocks"
	"duka_payments/internal/domain/entities"
	"duka_payments/internal/usecase"
	"duka_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func setupPaymentRouter(initiate *mocks.MockIInitiatePaymentUseCase, status *mocks.MockIPaymentStatusUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewPaymentHandler(initiate, status)
	r := gin.New()
	r.POST("/payments", h.Initiate)
	r.GET("/payments/status/:reference", h.GetStatus)
	return r
}

func TestPaymentHandler_Initiate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		initiate := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		status := mocks.NewMockIPaymentStatusUseCase(ctrl)
		r := setupPaymentRouter(initiate, status)

		initiate.EXPECT().
			Initiate(gomock.Any(), usecase.InitiatePaymentInput{
				OrderID: "ORD-1",
				Amount:  100,
				Phone:   "0710909198",
				Email:   "buyer@example.com",
			}).
			Return(usecase.InitiatePaymentResult{
				PaymentID:         "pay-1",
				OrderID:           "ORD-1",
				Status:            entities.IntentStatusPending,
				CheckoutRequestID: "ws_1",
				MerchantRequestID: "mr_1",
				CustomerMessage:   "Success. Request accepted for processing",
			}, nil)

		body := `{"orderId":"ORD-1","amount":100,"phone":"0710909198","email":"buyer@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body=%s", w.Code, w.Body.String())
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["success"] != true {
			t.Error("expected success=true")
		}
		if got["payment_id"] != "pay-1" || got["checkout_request_id"] != "ws_1" {
			t.Errorf("unexpected body: %v", got)
		}
		if got["status"] != "pending" {
			t.Errorf("status = %v, want pending", got["status"])
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		initiate := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		status := mocks.NewMockIPaymentStatusUseCase(ctrl)
		r := setupPaymentRouter(initiate, status)

		req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader("{nope"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), "INVALID_REQUEST") {
			t.Errorf("body = %s, want INVALID_REQUEST code", w.Body.String())
		}
	})

	t.Run("validation error lists fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		initiate := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		status := mocks.NewMockIPaymentStatusUseCase(ctrl)
		r := setupPaymentRouter(initiate, status)

		initiate.EXPECT().
			Initiate(gomock.Any(), gomock.Any()).
			Return(usecase.InitiatePaymentResult{}, &usecase.ValidationError{
				Fields: []usecase.FieldError{
					{Field: "phone", Message: "phone must be a valid Kenyan mobile number"},
				},
			})

		body := `{"orderId":"ORD-1","amount":100,"phone":"nope"}`
		req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}

		var got struct {
			Error struct {
				Code   string `json:"code"`
				Fields []struct {
					Field string `json:"field"`
				} `json:"fields"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.Error.Code != "VALIDATION_ERROR" {
			t.Errorf("code = %q, want VALIDATION_ERROR", got.Error.Code)
		}
		if len(got.Error.Fields) != 1 || got.Error.Fields[0].Field != "phone" {
			t.Errorf("unexpected fields: %+v", got.Error.Fields)
		}
	})

	t.Run("provider rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		initiate := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		status := mocks.NewMockIPaymentStatusUseCase(ctrl)
		r := setupPaymentRouter(initiate, status)

		initiate.EXPECT().
			Initiate(gomock.Any(), gomock.Any()).
			Return(usecase.InitiatePaymentResult{}, &interfaces.StkPushRejection{
				Code:    "500.001.1001",
				Message: "Unable to lock subscriber",
			})

		body := `{"orderId":"ORD-1","amount":100,"phone":"0710909198"}`
		req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), "PROVIDER_REJECTED") {
			t.Errorf("body = %s, want PROVIDER_REJECTED code", w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Unable to lock subscriber") {
			t.Errorf("body = %s, want provider message", w.Body.String())
		}
	})

	t.Run("upstream errors map to 500", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			wantCode string
		}{
			{name: "auth failure", err: usecase.ErrMpesaAuth, wantCode: "UPSTREAM_AUTH_FAILED"},
			{name: "provider unavailable", err: usecase.ErrMpesaUnavailable, wantCode: "UPSTREAM_UNAVAILABLE"},
			{name: "unexpected", err: errors.New("boom"), wantCode: "INTERNAL_ERROR"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				initiate := mocks.NewMockIInitiatePaymentUseCase(ctrl)
				status := mocks.NewMockIPaymentStatusUseCase(ctrl)
				r := setupPaymentRouter(initiate, status)

				initiate.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(usecase.InitiatePaymentResult{}, tt.err)

				body := `{"orderId":"ORD-1","amount":100,"phone":"0710909198"}`
				req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusInternalServerError {
					t.Fatalf("status = %d, want 500", w.Code)
				}
				if !strings.Contains(w.Body.String(), tt.wantCode) {
					t.Errorf("body = %s, want %s code", w.Body.String(), tt.wantCode)
				}
			})
		}
	})
}

func TestPaymentHandler_GetStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		initiate := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		status := mocks.NewMockIPaymentStatusUseCase(ctrl)
		r := setupPaymentRouter(initiate, status)

		status.EXPECT().
			GetByReference(gomock.Any(), "ORD-1").
			Return(usecase.PaymentStatusResult{
				Intent: entities.PaymentIntent{
					ID:            "pay-1",
					OrderID:       "ORD-1",
					Amount:        100,
					Phone:         "254710909198",
					Status:        entities.IntentStatusCompleted,
					ReceiptNumber: "R123",
				},
				Message: "Payment completed successfully.",
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/payments/status/ORD-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body=%s", w.Code, w.Body.String())
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["status"] != "completed" {
			t.Errorf("status = %v, want completed", got["status"])
		}
		if got["mpesa_receipt_number"] != "R123" {
			t.Errorf("receipt = %v, want R123", got["mpesa_receipt_number"])
		}
		if got["status_message"] != "Payment completed successfully." {
			t.Errorf("status_message = %v", got["status_message"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		initiate := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		status := mocks.NewMockIPaymentStatusUseCase(ctrl)
		r := setupPaymentRouter(initiate, status)

		status.EXPECT().
			GetByReference(gomock.Any(), "nope").
			Return(usecase.PaymentStatusResult{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/payments/status/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if !strings.Contains(w.Body.String(), "PAYMENT_NOT_FOUND") {
			t.Errorf("body = %s, want PAYMENT_NOT_FOUND code", w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		initiate := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		status := mocks.NewMockIPaymentStatusUseCase(ctrl)
		r := setupPaymentRouter(initiate, status)

		status.EXPECT().
			GetByReference(gomock.Any(), "ORD-1").
			Return(usecase.PaymentStatusResult{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/payments/status/ORD-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
	})
}
