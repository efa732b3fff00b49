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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateCompanionship handles POST /api/companionship (protected)
func (h *BookingHandler) CreateCompanionship(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CompanionshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateCompanionship(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create companionship booking")
		return
	}

	utils.ResponseCreated(w, "Companionship request submitted", booking)
}

// ListCompanionships handles GET /api/companionship (protected)
func (h *BookingHandler) ListCompanionships(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := paginationFromQuery(r)

	bookings, err := h.service.ListCompanionships(r.Context(), userID, req)
	if err != nil {
		h.handleServiceError(w, err, "list companionship bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CreateHomeNursing handles POST /api/home-nursing (protected)
func (h *BookingHandler) CreateHomeNursing(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.HomeNursingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateHomeNursing(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create home nursing booking")
		return
	}

	utils.ResponseCreated(w, "Home nursing request submitted", booking)
}

// ListHomeNursings handles GET /api/home-nursing (protected)
func (h *BookingHandler) ListHomeNursings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := paginationFromQuery(r)

	bookings, err := h.service.ListHomeNursings(r.Context(), userID, req)
	if err != nil {
		h.handleServiceError(w, err, "list home nursing bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}

// handleServiceError maps service failures to responses
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
