package response

import (
	"strings"
	"time"

	"duka_payments/internal/usecase"
)

type InitiatePaymentResponse struct {
	Success           bool   `json:"success"`
	PaymentID         string `json:"payment_id,omitempty"`
	OrderID           string `json:"order_id"`
	Status            string `json:"status"`
	CheckoutRequestID string `json:"checkout_request_id,omitempty"`
	MerchantRequestID string `json:"merchant_request_id,omitempty"`
	CustomerMessage   string `json:"customer_message,omitempty"`
}

func FromInitiateResult(res usecase.InitiatePaymentResult) InitiatePaymentResponse {
	return InitiatePaymentResponse{
		Success:           true,
		PaymentID:         res.PaymentID,
		OrderID:           res.OrderID,
		Status:            strings.ToLower(string(res.Status)),
		CheckoutRequestID: res.CheckoutRequestID,
		MerchantRequestID: res.MerchantRequestID,
		CustomerMessage:   res.CustomerMessage,
	}
}

type PaymentStatusResponse struct {
	PaymentID          string    `json:"payment_id"`
	OrderID            string    `json:"order_id"`
	Status             string    `json:"status"`
	StatusMessage      string    `json:"status_message"`
	Amount             int64     `json:"amount"`
	Phone              string    `json:"phone"`
	MpesaReceiptNumber string    `json:"mpesa_receipt_number,omitempty"`
	ResultDescription  string    `json:"result_description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromStatusResult(res usecase.PaymentStatusResult) PaymentStatusResponse {
	intent := res.Intent
	return PaymentStatusResponse{
		PaymentID:          intent.ID,
		OrderID:            intent.OrderID,
		Status:             strings.ToLower(string(intent.Status)),
		StatusMessage:      res.Message,
		Amount:             intent.Amount,
		Phone:              intent.Phone,
		MpesaReceiptNumber: intent.ReceiptNumber,
		ResultDescription:  intent.ResultDescription,
		CreatedAt:          intent.CreatedAt,
		UpdatedAt:          intent.UpdatedAt,
	}
}
