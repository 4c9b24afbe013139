package entities

import "time"

// IntentStatus represents the payment-intent lifecycle.
//
// Transitions are PENDING -> COMPLETED or PENDING -> FAILED, driven by the
// asynchronous STK callback. Both outcomes are terminal.

type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "PENDING"
	IntentStatusCompleted IntentStatus = "COMPLETED"
	IntentStatusFailed    IntentStatus = "FAILED"
)

// PaymentIntent is one attempt to collect payment for one order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//   - GSI2 (checkout_request_id-index): checkout_request_id
//
// Correlation identifiers:
//   - CheckoutRequestID/MerchantRequestID are issued by Daraja on a successful
//     STK push request. Empty string means the provider omitted them.
//   - CheckoutRequestID is the only key the callback reconciler may use to
//     locate an intent.

type PaymentIntent struct {
	ID                string       `json:"id"`
	OrderID           string       `json:"order_id"`
	Phone             string       `json:"phone"`
	Amount            int64        `json:"amount"`
	CheckoutRequestID string       `json:"checkout_request_id,omitempty"`
	MerchantRequestID string       `json:"merchant_request_id,omitempty"`
	Status            IntentStatus `json:"status"`
	ReceiptNumber     string       `json:"receipt_number,omitempty"`
	ResultDescription string       `json:"result_description,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// IsTerminal reports whether the intent reached an immutable final state.
func (p PaymentIntent) IsTerminal() bool {
	return p.Status == IntentStatusCompleted || p.Status == IntentStatusFailed
}
