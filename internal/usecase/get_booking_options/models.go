package get_booking_options

import (
	"time"

	"github.com/mmaniatis/v-tee/pkg/types"
)

// Request модель запроса на получение вариантов длительности
type Request struct {
	BusinessID int64           // ID бизнеса
	Date       time.Time       // Дата бронирования
	StartTime  types.TimeOfDay // Выбранное время начала слота
}

// Option вариант длительности с ценой для выбранного слота
type Option struct {
	DurationMinutes int     // Длительность в минутах
	Label           string  // Человекочитаемая метка ("1 hour 30 minutes")
	Price           float64 // Итоговая цена за весь интервал
}

// Response модель ответа со списком вариантов длительности
type Response struct {
	BusinessID int64           // ID бизнеса
	Date       time.Time       // Дата бронирования
	StartTime  types.TimeOfDay // Время начала слота
	Options    []Option        // Варианты, помещающиеся в рабочие часы
}
