package get_available_slots

import (
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
	getAvailableSlots "github.com/mmaniatis/v-tee/internal/usecase/get_available_slots"
)

// TimeSlotResponse HTTP модель одного временного слота
type TimeSlotResponse struct {
	StartTime   string  `json:"startTime"`   // "14:30"
	Display     string  `json:"display"`     // "2:30 PM"
	RatePerHour float64 `json:"ratePerHour"` // действующая почасовая ставка
	IsAvailable bool    `json:"isAvailable"`
	IsPeak      bool    `json:"isPeak"`
}

// SlotsResponse HTTP модель ответа со слотами на дату
type SlotsResponse struct {
	BusinessID int64              `json:"businessId"`
	Date       string             `json:"date"`
	IsOpen     bool               `json:"isOpen"`
	Slots      []TimeSlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(businessID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID: businessID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]TimeSlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlotResponse{
			StartTime:   slot.StartTime.String(),
			Display:     slot.Display,
			RatePerHour: slot.RatePerHour,
			IsAvailable: slot.IsAvailable,
			IsPeak:      slot.IsPeak,
		}
	}

	return &SlotsResponse{
		BusinessID: resp.BusinessID,
		Date:       resp.Date.Format(domain.DateFormat),
		IsOpen:     resp.IsOpen,
		Slots:      slots,
	}
}
