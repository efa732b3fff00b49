package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"eldercare-booking/internal/dto/request"
	"eldercare-booking/internal/usecase"
	"eldercare-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreateIntent handles POST /api/create-payment-intent (protected)
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid amount", validationErrors)
		return
	}

	intent, err := h.service.CreateIntent(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create payment intent")
		return
	}

	utils.ResponseSuccess(w, "success", intent)
}

// handleServiceError maps service failures to responses. Processor
// details never reach the client.
func (h *PaymentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "invalid amount"):
		h.log.Warn(operation+" failed - invalid amount", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid amount", nil)

	case strings.Contains(errMsg, "payment failed"):
		h.log.Error(operation+" failed at processor", zap.Error(err))
		utils.ResponseInternalError(w, "Payment failed")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
