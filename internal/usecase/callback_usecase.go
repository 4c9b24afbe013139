package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"duka_payments/internal/domain/entities"
	"duka_payments/internal/usecase/interfaces"
)

const (
	stkResultSuccess = 0

	mpesaReceiptMetadataName = "MpesaReceiptNumber"

	defaultSuccessDescription = "The service request is processed successfully."
	defaultFailureDescription = "Payment was not completed."
)

type CallbackMetadataItem struct {
	Name  string
	Value any
}

// StkCallbackInput is the flattened Daraja notification the reconciler
// consumes; the transport DTO unwraps the Body.stkCallback envelope.
type StkCallbackInput struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	Metadata          []CallbackMetadataItem
}

// CallbackResult reports the intent state after reconciliation. Duplicate
// means the intent was already terminal and nothing was written.
type CallbackResult struct {
	Intent    entities.PaymentIntent
	Duplicate bool
}

// IProcessCallbackUseCase reconciles an asynchronous Daraja notification
// against the stored intent.

type IProcessCallbackUseCase interface {
	Process(ctx context.Context, in StkCallbackInput) (CallbackResult, error)
}

type ProcessCallbackUseCase struct {
	repo interfaces.IPaymentIntentRepository
}

var _ IProcessCallbackUseCase = (*ProcessCallbackUseCase)(nil)

func NewProcessCallbackUseCase(repo interfaces.IPaymentIntentRepository) *ProcessCallbackUseCase {
	return &ProcessCallbackUseCase{repo: repo}
}

func (u *ProcessCallbackUseCase) Process(ctx context.Context, in StkCallbackInput) (CallbackResult, error) {
	checkoutID := strings.TrimSpace(in.CheckoutRequestID)
	if checkoutID == "" {
		log.Printf("[callback][usecase] missing checkout_request_id result_code=%d", in.ResultCode)
		return CallbackResult{}, ErrMalformedCallback
	}
	log.Printf("[callback][usecase] start checkout_request_id=%s result_code=%d", checkoutID, in.ResultCode)

	intent, err := u.repo.GetByCheckoutRequestID(ctx, checkoutID)
	if err != nil {
		log.Printf("[callback][usecase] lookup failed checkout_request_id=%s err=%v", checkoutID, err)
		return CallbackResult{}, err
	}
	if intent.ID == "" {
		log.Printf("[callback][usecase] no intent for checkout_request_id=%s", checkoutID)
		return CallbackResult{}, ErrUnknownCheckoutRequestID
	}

	// Idempotency guard: a terminal intent is immutable. A replayed or
	// conflicting delivery is acknowledged positively and ignored.
	if intent.IsTerminal() {
		log.Printf("[callback][usecase] duplicate delivery checkout_request_id=%s status=%s", checkoutID, intent.Status)
		return CallbackResult{Intent: intent, Duplicate: true}, nil
	}

	if in.ResultCode == stkResultSuccess {
		return u.complete(ctx, intent, in)
	}
	return u.fail(ctx, intent, in)
}

func (u *ProcessCallbackUseCase) complete(ctx context.Context, intent entities.PaymentIntent, in StkCallbackInput) (CallbackResult, error) {
	receipt := receiptFromMetadata(in.Metadata)
	desc := strings.TrimSpace(in.ResultDesc)
	if desc == "" {
		desc = defaultSuccessDescription
	}

	updated, swapped, err := u.repo.MarkCompleted(ctx, intent.ID, receipt, desc)
	if err != nil {
		log.Printf("[callback][usecase] complete failed payment_id=%s err=%v", intent.ID, err)
		return CallbackResult{}, err
	}
	if !swapped {
		return u.lostRace(ctx, intent)
	}
	log.Printf("[callback][usecase] completed payment_id=%s order_id=%s receipt=%s", updated.ID, updated.OrderID, receipt)
	return CallbackResult{Intent: updated}, nil
}

func (u *ProcessCallbackUseCase) fail(ctx context.Context, intent entities.PaymentIntent, in StkCallbackInput) (CallbackResult, error) {
	desc := strings.TrimSpace(in.ResultDesc)
	if desc == "" {
		desc = defaultFailureDescription
	}

	updated, swapped, err := u.repo.MarkFailed(ctx, intent.ID, desc)
	if err != nil {
		log.Printf("[callback][usecase] fail transition failed payment_id=%s err=%v", intent.ID, err)
		return CallbackResult{}, err
	}
	if !swapped {
		return u.lostRace(ctx, intent)
	}

	// A failed attempt no longer holds the order; releasing the claim lets
	// the caller initiate a fresh intent for it.
	if err := u.repo.ReleaseOrder(ctx, intent.OrderID); err != nil {
		log.Printf("[callback][usecase] order claim release failed order_id=%s err=%v", intent.OrderID, err)
	}

	log.Printf("[callback][usecase] failed payment_id=%s order_id=%s result_code=%d desc=%q", updated.ID, updated.OrderID, in.ResultCode, desc)
	return CallbackResult{Intent: updated}, nil
}

// lostRace handles the window where a concurrent delivery won the
// compare-and-swap between our read and our write.
func (u *ProcessCallbackUseCase) lostRace(ctx context.Context, intent entities.PaymentIntent) (CallbackResult, error) {
	current, err := u.repo.GetByID(ctx, intent.ID)
	if err != nil {
		return CallbackResult{}, err
	}
	if current.ID == "" {
		current = intent
	}
	log.Printf("[callback][usecase] concurrent delivery already settled payment_id=%s status=%s", current.ID, current.Status)
	return CallbackResult{Intent: current, Duplicate: true}, nil
}

func receiptFromMetadata(items []CallbackMetadataItem) string {
	for _, it := range items {
		if it.Name != mpesaReceiptMetadataName || it.Value == nil {
			continue
		}
		return strings.TrimSpace(fmt.Sprintf("%v", it.Value))
	}
	return ""
}
