package request

import "duka_payments/internal/usecase"

// StkCallbackEnvelope mirrors the Daraja notification schema:
//
//	{"Body":{"stkCallback":{"MerchantRequestID":..., "CheckoutRequestID":...,
//	  "ResultCode":0, "ResultDesc":"...", "CallbackMetadata":{"Item":[...]}}}}
//
// CallbackMetadata is only present on successful payments.
type StkCallbackEnvelope struct {
	Body struct {
		StkCallback StkCallbackBody `json:"stkCallback"`
	} `json:"Body"`
}

type StkCallbackBody struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResultCode        int    `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	CallbackMetadata  struct {
		Item []CallbackMetadataItem `json:"Item"`
	} `json:"CallbackMetadata"`
}

type CallbackMetadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

func (e StkCallbackEnvelope) ToInput() usecase.StkCallbackInput {
	cb := e.Body.StkCallback
	items := make([]usecase.CallbackMetadataItem, 0, len(cb.CallbackMetadata.Item))
	for _, it := range cb.CallbackMetadata.Item {
		items = append(items, usecase.CallbackMetadataItem{Name: it.Name, Value: it.Value})
	}
	return usecase.StkCallbackInput{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
		Metadata:          items,
	}
}
