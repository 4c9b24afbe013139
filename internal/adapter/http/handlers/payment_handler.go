package handlers

import (
	"errors"
	"log"
	"net/http"

	request "duka_payments/internal/adapter/http/dto/request"
	response "duka_payments/internal/adapter/http/dto/response"
	"duka_payments/internal/usecase"
	"duka_payments/internal/usecase/interfaces"
	"duka_payments/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment initiation and status.

type PaymentHandler struct {
	initiate usecase.IInitiatePaymentUseCase
	status   usecase.IPaymentStatusUseCase
}

func NewPaymentHandler(initiate usecase.IInitiatePaymentUseCase, status usecase.IPaymentStatusUseCase) *PaymentHandler {
	return &PaymentHandler{initiate: initiate, status: status}
}

// Initiate triggers an STK push for an inbound order event.
//
//	@Summary		Initiate a push payment for an order
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		request.InitiatePaymentRequest	true	"order event"
//	@Success		200		{object}	response.InitiatePaymentResponse
//	@Router			/payments [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var payload request.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[initiate][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[initiate][handler] start order_id=%s", payload.OrderID)
	res, err := h.initiate.Initiate(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[initiate][handler] failed order_id=%s err=%v", payload.OrderID, err)
		writeInitiateError(c, err)
		return
	}

	log.Printf("[initiate][handler] success order_id=%s payment_id=%s duplicate=%t", res.OrderID, res.PaymentID, res.AlreadyAccepted)
	c.JSON(http.StatusOK, response.FromInitiateResult(res))
}

// GetStatus returns the current state of an intent for polling clients.
// The reference path segment may be an order id or a checkout request id.
//
//	@Summary		Query payment status by order id or checkout request id
//	@Produce		json
//	@Param			reference	path		string	true	"order id or checkout request id"
//	@Success		200			{object}	response.PaymentStatusResponse
//	@Router			/payments/status/{reference} [get]
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	reference := c.Param("reference")

	res, err := h.status.GetByReference(c.Request.Context(), reference)
	if err != nil {
		log.Printf("[status][handler] failed reference=%s err=%v", reference, err)
		appErr := mapStatusError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatusResult(res))
}

func writeInitiateError(c *gin.Context, err error) {
	// Validation failures carry the offending fields back to the caller.
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid payment request",
				"fields":  verr.Fields,
			},
		})
		return
	}

	appErr := mapInitiateError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapInitiateError(err error) *pkg.AppError {
	var rejection *interfaces.StkPushRejection
	switch {
	case errors.As(err, &rejection):
		return pkg.NewDomainErrorSimple("PROVIDER_REJECTED", rejection.Message, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMpesaAuth):
		return pkg.NewDomainErrorSimple("UPSTREAM_AUTH_FAILED", "Could not authenticate with the payment provider", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrMpesaUnavailable):
		return pkg.NewDomainErrorSimple("UPSTREAM_UNAVAILABLE", "Payment provider is unavailable, try again later", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapStatusError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
