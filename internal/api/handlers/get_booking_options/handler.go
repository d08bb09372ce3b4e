package get_booking_options

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mmaniatis/v-tee/internal/api/handlers"
	getBookingOptions "github.com/mmaniatis/v-tee/internal/usecase/get_booking_options"
)

const (
	msgInvalidBusinessID = "некорректный ID заведения"
	msgMissingDate       = "дата обязательна"
	msgMissingTime       = "время начала обязательно"
	msgInvalidParams     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgBusinessNotFound  = "заведение не найдено"
	msgBusinessClosed    = "заведение закрыто в выбранную дату"
	msgOutsideHours      = "время начала вне рабочих часов"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetBookingOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/booking-options
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessIDStr := vars["businessId"]
	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/booking-options - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /businesses/{id}/booking-options - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /businesses/{id}/booking-options - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	useCaseReq, err := ToUseCaseRequest(businessID, dateStr, timeStr)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/booking-options - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getBookingOptions.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/booking-options - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getBookingOptions.ErrBusinessClosed):
			h.logger.Warn("GET /businesses/{id}/booking-options - Business closed: business_id=%d, date=%s", businessID, dateStr)
			handlers.RespondBadRequest(w, msgBusinessClosed)

		case errors.Is(err, getBookingOptions.ErrOutsideBusinessHours):
			h.logger.Warn("GET /businesses/{id}/booking-options - Outside hours: business_id=%d, time=%s", businessID, timeStr)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, getBookingOptions.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/booking-options - Invalid input: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /businesses/{id}/booking-options - Failed to get options: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /businesses/{id}/booking-options - Options retrieved successfully: business_id=%d, date=%s, time=%s, options_count=%d",
		businessID, dateStr, timeStr, len(result.Options))
	handlers.RespondJSON(w, http.StatusOK, response)
}
