package handlers

import (
	"errors"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/models"
	"loanlink/loan_marketplace/internal/pkg/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PaymentsHandler struct {
	gateway services.PaymentGatewayInterface
}

func NewPaymentsHandler(gateway services.PaymentGatewayInterface) *PaymentsHandler {
	return &PaymentsHandler{gateway: gateway}
}

// CreatePaymentIntent asks the payment provider for an intent over the
// application fee and hands the client secret back for client-side
// confirmation.
func (h *PaymentsHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.gateway.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, consts.ErrInvalidPaymentAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": consts.ErrInvalidPaymentAmount.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
