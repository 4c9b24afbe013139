package interfaces

import "context"

// StkPushRequest is the push-payment command sent to Daraja.
type StkPushRequest struct {
	Amount           int64
	Phone            string
	AccountReference string
	Description      string
}

// StkPushResult carries the correlation identifiers Daraja issues for a push
// it accepted. Either ID may be empty when the provider omits it.
type StkPushResult struct {
	MerchantRequestID   string
	CheckoutRequestID   string
	ResponseCode        string
	ResponseDescription string
	CustomerMessage     string
}

// StkPushRejection is returned when Daraja understood the request and
// declined it. Transport-level failures surface as plain errors instead.
type StkPushRejection struct {
	Code    string
	Message string
}

func (e *StkPushRejection) Error() string {
	if e.Code != "" {
		return "stk push rejected (" + e.Code + "): " + e.Message
	}
	return "stk push rejected: " + e.Message
}

// IMpesaGateway abstracts the Daraja API: the OAuth credential exchange and
// the STK push request. Token failures are the caller's cue to classify the
// outcome as a transient auth problem.

type IMpesaGateway interface {
	Token(ctx context.Context) (string, error)
	StkPush(ctx context.Context, token string, req StkPushRequest) (StkPushResult, error)
}
