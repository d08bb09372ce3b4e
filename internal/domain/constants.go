package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultMinDurationMinutes  = 30
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 480 // 8 hours
	MinBookingDuration     = 15
	MaxBookingDuration     = 720 // 12 hours
	MaxPriceRatePerHour    = 10000
	MaxDiscountRate        = 1.0
	MaxLogoTextLength      = 100
	DaysPerWeek            = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не блокирующих слоты
// Используется при подсчете занятости временных окон
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}
