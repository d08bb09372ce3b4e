package create_reservation

import (
	"time"

	"github.com/mmaniatis/v-tee/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	BusinessID      int64           // ID бизнеса
	Date            time.Time       // Дата бронирования (без времени)
	StartTime       types.TimeOfDay // Время начала слота (например, "10:00")
	DurationMinutes int             // Длительность в минутах
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64           // ID созданного бронирования
	BusinessID      int64           // ID бизнеса
	Date            time.Time       // Дата бронирования
	StartTime       types.TimeOfDay // Время начала
	DurationMinutes int             // Длительность в минутах
	Price           float64         // Итоговая цена, рассчитанная сервером
	Status          string          // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
