package request

import "duka_payments/internal/usecase"

// InitiatePaymentRequest is the storefront order-webhook payload that
// triggers a push payment. Range and format checks live in the usecase so
// they stay transport-agnostic; this DTO only carries the JSON shape.
type InitiatePaymentRequest struct {
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (r InitiatePaymentRequest) ToInput() usecase.InitiatePaymentInput {
	return usecase.InitiatePaymentInput{
		OrderID: r.OrderID,
		Amount:  r.Amount,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}
