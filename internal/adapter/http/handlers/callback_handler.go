package handlers

import (
	"errors"
	"log"
	"net/http"

	request "duka_payments/internal/adapter/http/dto/request"
	response "duka_payments/internal/adapter/http/dto/response"
	"duka_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CallbackHandler receives asynchronous STK result notifications from Daraja.
//
// Every handled outcome answers with the provider ack contract so Daraja's
// delivery channel never sees a crash; only a store failure surfaces as a
// 5xx, which leaves the retry to the provider.

type CallbackHandler struct {
	usecase usecase.IProcessCallbackUseCase
}

func NewCallbackHandler(uc usecase.IProcessCallbackUseCase) *CallbackHandler {
	return &CallbackHandler{usecase: uc}
}

// HandleStkCallback reconciles a Daraja notification against the stored intent.
//
//	@Summary		Daraja STK push result callback
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	response.CallbackAck
//	@Router			/payments/callback [post]
func (h *CallbackHandler) HandleStkCallback(c *gin.Context) {
	var envelope request.StkCallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		log.Printf("[callback][handler] unparseable payload err=%v", err)
		c.JSON(http.StatusBadRequest, response.AckFailure("Invalid callback payload"))
		return
	}

	res, err := h.usecase.Process(c.Request.Context(), envelope.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMalformedCallback):
			c.JSON(http.StatusBadRequest, response.AckFailure("Missing CheckoutRequestID"))
		case errors.Is(err, usecase.ErrUnknownCheckoutRequestID):
			c.JSON(http.StatusNotFound, response.AckFailure("No matching payment request"))
		default:
			log.Printf("[callback][handler] processing failed checkout_request_id=%s err=%v", envelope.Body.StkCallback.CheckoutRequestID, err)
			c.JSON(http.StatusInternalServerError, response.AckFailure("Internal error"))
		}
		return
	}

	log.Printf("[callback][handler] acknowledged payment_id=%s status=%s duplicate=%t", res.Intent.ID, res.Intent.Status, res.Duplicate)
	c.JSON(http.StatusOK, response.AckSuccess())
}
