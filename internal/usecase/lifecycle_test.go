package usecase_test

import (
	"context"
	"sync"
	"testing"

	"duka_payments/internal/domain/entities"
	"duka_payments/internal/usecase"
	"duka_payments/internal/usecase/interfaces"
	mock_interfaces "duka_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// memoryIntentRepository mimics the conditional-write semantics of the
// DynamoDB repository so the three usecases can be exercised together.
type memoryIntentRepository struct {
	mu      sync.Mutex
	intents map[string]entities.PaymentIntent
	claims  map[string]bool
}

var _ interfaces.IPaymentIntentRepository = (*memoryIntentRepository)(nil)

func newMemoryIntentRepository() *memoryIntentRepository {
	return &memoryIntentRepository{
		intents: make(map[string]entities.PaymentIntent),
		claims:  make(map[string]bool),
	}
}

func (r *memoryIntentRepository) CreatePending(_ context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents[intent.ID] = intent
	return intent, nil
}

func (r *memoryIntentRepository) GetByID(_ context.Context, id string) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.intents[id], nil
}

func (r *memoryIntentRepository) GetActiveByOrderID(_ context.Context, orderID string) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.intents {
		if it.OrderID == orderID && it.Status != entities.IntentStatusFailed {
			return it, nil
		}
	}
	return entities.PaymentIntent{}, nil
}

func (r *memoryIntentRepository) GetLatestByOrderID(_ context.Context, orderID string) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest entities.PaymentIntent
	for _, it := range r.intents {
		if it.OrderID == orderID && (latest.ID == "" || it.CreatedAt.After(latest.CreatedAt)) {
			latest = it
		}
	}
	return latest, nil
}

func (r *memoryIntentRepository) GetByCheckoutRequestID(_ context.Context, checkoutRequestID string) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.intents {
		if it.CheckoutRequestID == checkoutRequestID {
			return it, nil
		}
	}
	return entities.PaymentIntent{}, nil
}

func (r *memoryIntentRepository) ClaimOrder(_ context.Context, orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claims[orderID] {
		return false, nil
	}
	r.claims[orderID] = true
	return true, nil
}

func (r *memoryIntentRepository) ReleaseOrder(_ context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.claims, orderID)
	return nil
}

func (r *memoryIntentRepository) MarkCompleted(_ context.Context, id, receiptNumber, resultDescription string) (entities.PaymentIntent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.intents[id]
	if !ok || it.Status != entities.IntentStatusPending {
		return entities.PaymentIntent{}, false, nil
	}
	it.Status = entities.IntentStatusCompleted
	it.ReceiptNumber = receiptNumber
	it.ResultDescription = resultDescription
	r.intents[id] = it
	return it, true, nil
}

func (r *memoryIntentRepository) MarkFailed(_ context.Context, id, resultDescription string) (entities.PaymentIntent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.intents[id]
	if !ok || it.Status != entities.IntentStatusPending {
		return entities.PaymentIntent{}, false, nil
	}
	it.Status = entities.IntentStatusFailed
	it.ResultDescription = resultDescription
	r.intents[id] = it
	return it, true, nil
}

// Exercises the full happy path: initiation raises a PENDING intent, the
// provider callback completes it, and the status projection reflects it.
func TestPaymentLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newMemoryIntentRepository()
	gateway := mock_interfaces.NewMockIMpesaGateway(ctrl)

	gateway.EXPECT().Token(gomock.Any()).Return("tok", nil)
	gateway.EXPECT().StkPush(gomock.Any(), "tok", gomock.Any()).Return(interfaces.StkPushResult{
		MerchantRequestID: "mr_1",
		CheckoutRequestID: "ws_1",
		ResponseCode:      "0",
		CustomerMessage:   "Success. Request accepted for processing",
	}, nil)

	initiate := usecase.NewInitiatePaymentUseCase(repo, gateway)
	callback := usecase.NewProcessCallbackUseCase(repo)
	status := usecase.NewPaymentStatusUseCase(repo)

	ctx := context.Background()

	initRes, err := initiate.Initiate(ctx, usecase.InitiatePaymentInput{
		OrderID: "ORD-1",
		Amount:  100,
		Phone:   "0710909198",
	})
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}
	if initRes.Status != entities.IntentStatusPending || initRes.CheckoutRequestID != "ws_1" {
		t.Fatalf("unexpected initiation result: %+v", initRes)
	}

	// Second initiation for the same order must not reach the provider.
	dupRes, err := initiate.Initiate(ctx, usecase.InitiatePaymentInput{
		OrderID: "ORD-1",
		Amount:  100,
		Phone:   "0710909198",
	})
	if err != nil {
		t.Fatalf("duplicate initiate: %v", err)
	}
	if !dupRes.AlreadyAccepted || dupRes.PaymentID != initRes.PaymentID {
		t.Fatalf("expected idempotent short-circuit, got %+v", dupRes)
	}

	cbRes, err := callback.Process(ctx, usecase.StkCallbackInput{
		MerchantRequestID: "mr_1",
		CheckoutRequestID: "ws_1",
		ResultCode:        0,
		ResultDesc:        "The service request is processed successfully.",
		Metadata: []usecase.CallbackMetadataItem{
			{Name: "MpesaReceiptNumber", Value: "R123"},
		},
	})
	if err != nil {
		t.Fatalf("callback: %v", err)
	}
	if cbRes.Duplicate || cbRes.Intent.Status != entities.IntentStatusCompleted {
		t.Fatalf("unexpected callback result: %+v", cbRes)
	}

	// A replayed delivery is acknowledged without rewriting the intent.
	replay, err := callback.Process(ctx, usecase.StkCallbackInput{
		CheckoutRequestID: "ws_1",
		ResultCode:        1032,
		ResultDesc:        "Request cancelled by user",
	})
	if err != nil {
		t.Fatalf("replayed callback: %v", err)
	}
	if !replay.Duplicate || replay.Intent.Status != entities.IntentStatusCompleted {
		t.Fatalf("conflicting replay must not change state: %+v", replay)
	}

	statusRes, err := status.GetByReference(ctx, "ORD-1")
	if err != nil {
		t.Fatalf("status by order id: %v", err)
	}
	if statusRes.Intent.Status != entities.IntentStatusCompleted || statusRes.Intent.ReceiptNumber != "R123" {
		t.Fatalf("unexpected status projection: %+v", statusRes.Intent)
	}

	byCheckout, err := status.GetByReference(ctx, "ws_1")
	if err != nil {
		t.Fatalf("status by checkout request id: %v", err)
	}
	if byCheckout.Intent.ID != statusRes.Intent.ID {
		t.Fatal("both references must resolve the same intent")
	}
}

// A failed payment releases the order so a fresh intent can be raised.
func TestPaymentLifecycle_FailedThenRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newMemoryIntentRepository()
	gateway := mock_interfaces.NewMockIMpesaGateway(ctrl)

	gateway.EXPECT().Token(gomock.Any()).Return("tok", nil).Times(2)
	first := gateway.EXPECT().StkPush(gomock.Any(), "tok", gomock.Any()).Return(interfaces.StkPushResult{
		CheckoutRequestID: "ws_1",
		MerchantRequestID: "mr_1",
	}, nil)
	gateway.EXPECT().StkPush(gomock.Any(), "tok", gomock.Any()).Return(interfaces.StkPushResult{
		CheckoutRequestID: "ws_2",
		MerchantRequestID: "mr_2",
	}, nil).After(first)

	initiate := usecase.NewInitiatePaymentUseCase(repo, gateway)
	callback := usecase.NewProcessCallbackUseCase(repo)

	ctx := context.Background()
	in := usecase.InitiatePaymentInput{OrderID: "ORD-1", Amount: 100, Phone: "0710909198"}

	firstRes, err := initiate.Initiate(ctx, in)
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}

	if _, err := callback.Process(ctx, usecase.StkCallbackInput{
		CheckoutRequestID: "ws_1",
		ResultCode:        1032,
		ResultDesc:        "Request cancelled by user",
	}); err != nil {
		t.Fatalf("failure callback: %v", err)
	}

	retryRes, err := initiate.Initiate(ctx, in)
	if err != nil {
		t.Fatalf("retry initiate: %v", err)
	}
	if retryRes.AlreadyAccepted {
		t.Error("retry after failure must produce a fresh push")
	}
	if retryRes.PaymentID == firstRes.PaymentID {
		t.Error("retry must create a new intent")
	}
	if retryRes.CheckoutRequestID != "ws_2" {
		t.Errorf("retry checkout request id = %q, want ws_2", retryRes.CheckoutRequestID)
	}
}
