package get_court_schedule

import (
	"time"

	"github.com/m04kA/CourtEase-BookingService/internal/availability"
)

// Request модель запроса расписания корта
type Request struct {
	CourtID       int64      // ID корта
	Month         time.Time  // Отображаемый месяц (первое число, полночь)
	Date          *time.Time // Выбранная дата для списка стартовых часов (опционально)
	Hour          *int       // Выбранный стартовый час для списка длительностей (опционально)
	DurationHours int        // Выбранная длительность для расчета стартовых часов
}

// Response модель ответа с календарной сеткой и опциями выбора
type Response struct {
	CourtID    int64
	CourtName  string
	Month      time.Time
	HorizonEnd time.Time

	// Grid всегда ровно 42 ячейки (6 недель, сетка с понедельника)
	Grid []availability.DayCell

	// Hours заполняется только при выбранной дате
	Hours []availability.HourOption

	// Durations заполняется только при выбранных дате и часе
	Durations []availability.DurationOption
}
