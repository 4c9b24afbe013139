package interfaces

import (
	"context"
	"duka_payments/internal/domain/entities"
)

// IPaymentIntentRepository abstracts DynamoDB persistence for PaymentIntent.
//
// Concurrency contract:
//   - ClaimOrder serializes concurrent initiations for the same order: exactly
//     one caller gets true, everyone else gets false until the claim is
//     released (failed push) or the intent reaches FAILED.
//   - MarkCompleted/MarkFailed are compare-and-swap on status = PENDING;
//     the losing writer of a race gets swapped=false, never an error.

type IPaymentIntentRepository interface {
	CreatePending(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)

	// GetActiveByOrderID returns the intent holding the order (status PENDING
	// or COMPLETED), zero value if none. A prior FAILED intent does not count.
	GetActiveByOrderID(ctx context.Context, orderID string) (entities.PaymentIntent, error)

	// GetLatestByOrderID returns the most recent intent for the order
	// regardless of status, zero value if none.
	GetLatestByOrderID(ctx context.Context, orderID string) (entities.PaymentIntent, error)

	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (entities.PaymentIntent, error)

	ClaimOrder(ctx context.Context, orderID string) (bool, error)
	ReleaseOrder(ctx context.Context, orderID string) error

	MarkCompleted(ctx context.Context, id, receiptNumber, resultDescription string) (entities.PaymentIntent, bool, error)
	MarkFailed(ctx context.Context, id, resultDescription string) (entities.PaymentIntent, bool, error)
}
