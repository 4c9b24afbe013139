package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"duka_payments/internal/domain/entities"
	"duka_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	minAmount = 1
	maxAmount = 150000

	maxOrderIDLength = 255

	transactionDescription = "Order payment"
)

type InitiatePaymentInput struct {
	OrderID string
	Amount  int64
	Phone   string
	Email   string
}

// InitiatePaymentResult is success-shaped for both fresh and duplicate
// initiations. AlreadyAccepted marks the idempotent short-circuit: the order
// already has a PENDING or COMPLETED intent and no new push was requested.
type InitiatePaymentResult struct {
	PaymentID         string
	OrderID           string
	Status            entities.IntentStatus
	CheckoutRequestID string
	MerchantRequestID string
	CustomerMessage   string
	AlreadyAccepted   bool
}

// IInitiatePaymentUseCase encapsulates the "initiate push payment" behavior:
// validate, deduplicate, request the STK push, persist the pending intent.

type IInitiatePaymentUseCase interface {
	Initiate(ctx context.Context, in InitiatePaymentInput) (InitiatePaymentResult, error)
}

type InitiatePaymentUseCase struct {
	repo    interfaces.IPaymentIntentRepository
	gateway interfaces.IMpesaGateway
}

var _ IInitiatePaymentUseCase = (*InitiatePaymentUseCase)(nil)

func NewInitiatePaymentUseCase(repo interfaces.IPaymentIntentRepository, gateway interfaces.IMpesaGateway) *InitiatePaymentUseCase {
	return &InitiatePaymentUseCase{repo: repo, gateway: gateway}
}

func (u *InitiatePaymentUseCase) Initiate(ctx context.Context, in InitiatePaymentInput) (InitiatePaymentResult, error) {
	log.Printf("[initiate][usecase] start order_id=%q amount=%d", in.OrderID, in.Amount)

	if verr := validateInitiateInput(in); verr != nil {
		log.Printf("[initiate][usecase] validation failed order_id=%q err=%v", in.OrderID, verr)
		return InitiatePaymentResult{}, verr
	}
	if u.gateway == nil {
		log.Printf("[initiate][usecase] gateway not configured order_id=%q", in.OrderID)
		return InitiatePaymentResult{}, errors.New("mpesa gateway not configured")
	}

	orderID := strings.TrimSpace(in.OrderID)
	phone := normalizePhone(in.Phone)

	// Idempotent short-circuit: a PENDING or COMPLETED intent already holds
	// this order. A prior FAILED intent does not block re-initiation.
	existing, err := u.repo.GetActiveByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[initiate][usecase] dedup lookup failed order_id=%s err=%v", orderID, err)
		return InitiatePaymentResult{}, err
	}
	if existing.ID != "" {
		log.Printf("[initiate][usecase] duplicate initiation order_id=%s payment_id=%s status=%s", orderID, existing.ID, existing.Status)
		return resultFromIntent(existing, true), nil
	}

	// Claim the order before touching the provider so N concurrent
	// initiations produce exactly one STK push.
	claimed, err := u.repo.ClaimOrder(ctx, orderID)
	if err != nil {
		log.Printf("[initiate][usecase] order claim failed order_id=%s err=%v", orderID, err)
		return InitiatePaymentResult{}, err
	}
	if !claimed {
		existing, err := u.repo.GetActiveByOrderID(ctx, orderID)
		if err != nil {
			return InitiatePaymentResult{}, err
		}
		if existing.ID != "" {
			log.Printf("[initiate][usecase] claim lost, returning existing order_id=%s payment_id=%s", orderID, existing.ID)
			return resultFromIntent(existing, true), nil
		}
		// Another request holds the claim but has not persisted its intent yet.
		log.Printf("[initiate][usecase] claim lost, initiation in flight order_id=%s", orderID)
		return InitiatePaymentResult{
			OrderID:         orderID,
			Status:          entities.IntentStatusPending,
			CustomerMessage: "Payment request already in progress for this order",
			AlreadyAccepted: true,
		}, nil
	}

	token, err := u.gateway.Token(ctx)
	if err != nil {
		log.Printf("[initiate][usecase] token acquisition failed order_id=%s err=%v", orderID, err)
		u.releaseClaim(ctx, orderID)
		return InitiatePaymentResult{}, ErrMpesaAuth
	}

	pushed, err := u.gateway.StkPush(ctx, token, interfaces.StkPushRequest{
		Amount:           in.Amount,
		Phone:            phone,
		AccountReference: orderID,
		Description:      transactionDescription,
	})
	if err != nil {
		log.Printf("[initiate][usecase] stk push failed order_id=%s err=%v", orderID, err)
		u.releaseClaim(ctx, orderID)
		var rejection *interfaces.StkPushRejection
		if errors.As(err, &rejection) {
			return InitiatePaymentResult{}, rejection
		}
		return InitiatePaymentResult{}, ErrMpesaUnavailable
	}

	now := time.Now().UTC()
	intent := entities.PaymentIntent{
		ID:                uuid.NewString(),
		OrderID:           orderID,
		Phone:             phone,
		Amount:            in.Amount,
		CheckoutRequestID: pushed.CheckoutRequestID,
		MerchantRequestID: pushed.MerchantRequestID,
		Status:            entities.IntentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.CreatePending(ctx, intent)
	if err != nil {
		// The push already went out; keeping the claim prevents a retry from
		// charging the customer twice while this intent is unaccounted for.
		log.Printf("[initiate][usecase] create pending failed after push order_id=%s checkout_request_id=%s err=%v", orderID, pushed.CheckoutRequestID, err)
		return InitiatePaymentResult{}, err
	}

	log.Printf("[initiate][usecase] success order_id=%s payment_id=%s checkout_request_id=%s", orderID, created.ID, created.CheckoutRequestID)
	res := resultFromIntent(created, false)
	res.CustomerMessage = pushed.CustomerMessage
	return res, nil
}

func (u *InitiatePaymentUseCase) releaseClaim(ctx context.Context, orderID string) {
	if err := u.repo.ReleaseOrder(ctx, orderID); err != nil {
		log.Printf("[initiate][usecase] order claim release failed order_id=%s err=%v", orderID, err)
	}
}

func resultFromIntent(intent entities.PaymentIntent, alreadyAccepted bool) InitiatePaymentResult {
	return InitiatePaymentResult{
		PaymentID:         intent.ID,
		OrderID:           intent.OrderID,
		Status:            intent.Status,
		CheckoutRequestID: intent.CheckoutRequestID,
		MerchantRequestID: intent.MerchantRequestID,
		AlreadyAccepted:   alreadyAccepted,
	}
}

func validateInitiateInput(in InitiatePaymentInput) *ValidationError {
	var fields []FieldError

	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		fields = append(fields, FieldError{Field: "order_id", Message: "order_id is required"})
	} else if len(orderID) > maxOrderIDLength {
		fields = append(fields, FieldError{Field: "order_id", Message: "order_id must be at most 255 characters"})
	}

	if in.Amount < minAmount || in.Amount > maxAmount {
		fields = append(fields, FieldError{Field: "amount", Message: "amount must be between 1 and 150000"})
	}

	if strings.TrimSpace(in.Phone) == "" {
		fields = append(fields, FieldError{Field: "phone", Message: "phone is required"})
	} else if !isValidPhone(in.Phone) {
		fields = append(fields, FieldError{Field: "phone", Message: "phone must be a valid Kenyan mobile number"})
	}

	if email := strings.TrimSpace(in.Email); email != "" && !strings.Contains(email, "@") {
		fields = append(fields, FieldError{Field: "email", Message: "email must be a valid address"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
