package update_business_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mmaniatis/v-tee/internal/api/handlers"
	businessService "github.com/mmaniatis/v-tee/internal/service/business"
)

const (
	sectionSchedule  = "schedule"
	sectionPricing   = "pricing"
	sectionDurations = "durations"
	sectionBranding  = "branding"
)

const (
	msgInvalidBusinessID  = "некорректный ID заведения"
	msgUnknownSection     = "неизвестная секция настроек"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgBusinessNotFound   = "заведение не найдено"
	msgInvalidSection     = "некорректные настройки секции"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/businesses/{businessId}/config/{section}
// Секции обновляются дискретно и атомарно: schedule, pricing, durations, branding
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessIDStr := vars["businessId"]
	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/config/{section} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	section := vars["section"]

	switch section {
	case sectionSchedule:
		h.updateSchedule(w, r, businessID)
	case sectionPricing:
		h.updatePricing(w, r, businessID)
	case sectionDurations:
		h.updateDurations(w, r, businessID)
	case sectionBranding:
		h.updateBranding(w, r, businessID)
	default:
		h.logger.Warn("PUT /businesses/{id}/config/{section} - Unknown section: %s", section)
		handlers.RespondBadRequest(w, msgUnknownSection)
	}
}

func (h *Handler) updateSchedule(w http.ResponseWriter, r *http.Request, businessID int64) {
	var req ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/config/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := req.ToDomainSchedule()
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/config/schedule - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	h.respond(w, "schedule", businessID, h.service.UpdateSchedule(r.Context(), businessID, schedule))
}

func (h *Handler) updatePricing(w http.ResponseWriter, r *http.Request, businessID int64) {
	var req PricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/config/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pricing, err := req.ToDomainPricing()
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/config/pricing - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	h.respond(w, "pricing", businessID, h.service.UpdatePricing(r.Context(), businessID, pricing))
}

func (h *Handler) updateDurations(w http.ResponseWriter, r *http.Request, businessID int64) {
	var req DurationsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/config/durations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.respond(w, "durations", businessID, h.service.UpdateDurations(r.Context(), businessID, req.ToDomainDurations()))
}

func (h *Handler) updateBranding(w http.ResponseWriter, r *http.Request, businessID int64) {
	var req BrandingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/config/branding - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.respond(w, "branding", businessID, h.service.UpdateBranding(r.Context(), businessID, req.ToDomainBranding()))
}

// respond единообразно обрабатывает результат обновления секции
func (h *Handler) respond(w http.ResponseWriter, section string, businessID int64, err error) {
	if err != nil {
		switch {
		case errors.Is(err, businessService.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{id}/config/%s - Business not found: business_id=%d", section, businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, businessService.ErrInvalidSchedule),
			errors.Is(err, businessService.ErrInvalidPricing),
			errors.Is(err, businessService.ErrInvalidDurations),
			errors.Is(err, businessService.ErrInvalidBranding):
			h.logger.Warn("PUT /businesses/{id}/config/%s - Validation failed: business_id=%d, error=%v",
				section, businessID, err)
			handlers.RespondBadRequest(w, msgInvalidSection)

		default:
			h.logger.Error("PUT /businesses/{id}/config/%s - Failed to update: business_id=%d, error=%v",
				section, businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/config/%s - Updated successfully: business_id=%d", section, businessID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
