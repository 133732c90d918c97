package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Start hosted checkout
// @Description Signed form fields for the PayHere hosted payment page
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout"
// @Success 200 {object} shared.CheckoutPayload
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	payload, err := h.cmds.InitiateCheckout(c.Request.Context(), actor, req.ReservationID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// @Summary Payment notification
// @Description Server-to-server callback from the payment gateway. Accepts form or JSON bodies; replays are acknowledged with ALREADY_APPLIED.
// @Tags payments
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Success 200 {object} resdto.ReconciliationResponse
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/notify [post]
func (h *PaymentHandler) Notify(c *gin.Context) {
	var req reqdto.PaymentNotifyRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification", nil)
		return
	}

	result, err := h.cmds.Reconcile(c.Request.Context(), req.ToNotification())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconciliationResult(result))
}
