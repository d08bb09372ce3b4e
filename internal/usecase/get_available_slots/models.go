package get_available_slots

import (
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	BusinessID int64     // ID бизнеса
	Date       time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	BusinessID int64             // ID бизнеса
	Date       time.Time         // Дата, на которую запрашивались слоты
	IsOpen     bool              // Открыт ли бизнес в этот день
	Slots      []domain.TimeSlot // Список слотов (занятые помечены IsAvailable=false)
}
