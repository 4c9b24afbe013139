package response

// CallbackAck is the acknowledgment contract Daraja expects for every
// delivered notification, whatever the processing outcome. ResultCode 0
// tells the provider to stop retrying.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

func AckSuccess() CallbackAck {
	return CallbackAck{ResultCode: 0, ResultDesc: "Success"}
}

func AckFailure(desc string) CallbackAck {
	return CallbackAck{ResultCode: 1, ResultDesc: desc}
}
