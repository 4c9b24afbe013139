package usecase

import (
	"context"
	"log"
	"strings"

	"duka_payments/internal/domain/entities"
	"duka_payments/internal/usecase/interfaces"
)

type PaymentStatusResult struct {
	Intent  entities.PaymentIntent
	Message string
}

// IPaymentStatusUseCase is the read-only projection polling clients use.
// The reference may be either an order id or a checkout request id.

type IPaymentStatusUseCase interface {
	GetByReference(ctx context.Context, reference string) (PaymentStatusResult, error)
}

type PaymentStatusUseCase struct {
	repo interfaces.IPaymentIntentRepository
}

var _ IPaymentStatusUseCase = (*PaymentStatusUseCase)(nil)

func NewPaymentStatusUseCase(repo interfaces.IPaymentIntentRepository) *PaymentStatusUseCase {
	return &PaymentStatusUseCase{repo: repo}
}

func (u *PaymentStatusUseCase) GetByReference(ctx context.Context, reference string) (PaymentStatusResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return PaymentStatusResult{}, ErrPaymentNotFound
	}

	intent, err := u.repo.GetLatestByOrderID(ctx, reference)
	if err != nil {
		return PaymentStatusResult{}, err
	}
	if intent.ID == "" {
		intent, err = u.repo.GetByCheckoutRequestID(ctx, reference)
		if err != nil {
			return PaymentStatusResult{}, err
		}
	}
	if intent.ID == "" {
		log.Printf("[status][usecase] no intent for reference=%s", reference)
		return PaymentStatusResult{}, ErrPaymentNotFound
	}

	return PaymentStatusResult{Intent: intent, Message: statusMessage(intent.Status)}, nil
}

func statusMessage(status entities.IntentStatus) string {
	switch status {
	case entities.IntentStatusPending:
		return "Payment is pending. Ask the customer to authorize the prompt on their phone."
	case entities.IntentStatusCompleted:
		return "Payment completed successfully."
	case entities.IntentStatusFailed:
		return "Payment failed."
	default:
		return "Unknown payment status."
	}
}
