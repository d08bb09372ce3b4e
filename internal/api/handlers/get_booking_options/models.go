package get_booking_options

import (
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
	getBookingOptions "github.com/mmaniatis/v-tee/internal/usecase/get_booking_options"
	"github.com/mmaniatis/v-tee/pkg/types"
)

// OptionResponse HTTP модель одного варианта длительности
type OptionResponse struct {
	DurationMinutes int     `json:"durationMinutes"`
	Label           string  `json:"label"` // "1 hour 30 minutes"
	Price           float64 `json:"price"` // полная цена интервала
}

// OptionsResponse HTTP модель ответа с вариантами длительности
type OptionsResponse struct {
	BusinessID int64            `json:"businessId"`
	Date       string           `json:"date"`
	StartTime  string           `json:"startTime"`
	Options    []OptionResponse `json:"options"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(businessID int64, dateStr, timeStr string) (*getBookingOptions.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.ParseTimeOfDay(timeStr)
	if err != nil {
		return nil, err
	}

	return &getBookingOptions.Request{
		BusinessID: businessID,
		Date:       date,
		StartTime:  startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingOptions.Response) *OptionsResponse {
	options := make([]OptionResponse, len(resp.Options))
	for i, opt := range resp.Options {
		options[i] = OptionResponse{
			DurationMinutes: opt.DurationMinutes,
			Label:           opt.Label,
			Price:           opt.Price,
		}
	}

	return &OptionsResponse{
		BusinessID: resp.BusinessID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		Options:    options,
	}
}
