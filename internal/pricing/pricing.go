// Package pricing расчет стоимости бронирования
package pricing

import (
	"errors"
	"math"
	"time"
)

// ErrPriceNotConfigured возвращается, когда часовая ставка корта не задана
// или итоговая стоимость получается некорректной (<= 0, NaN, Inf).
// Создание бронирования в этом случае должно быть прервано —
// молчаливый ноль недопустим
var ErrPriceNotConfigured = errors.New("pricing: court price is not configured")

// Calculate вычисляет итоговую стоимость бронирования в целых единицах валюты
//
// Длительность для расчета берется из фактической разницы end - start
// (не из селектора длительности), но не меньше 1 часа:
//
//	total = ceil(pricePerHour × max(1, (end - start) / 1h))
func Calculate(pricePerHour float64, start, end time.Time) (int64, error) {
	durationHours := end.Sub(start).Hours()
	if durationHours < 1 {
		durationHours = 1
	}

	total := math.Ceil(pricePerHour * durationHours)
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return 0, ErrPriceNotConfigured
	}

	return int64(total), nil
}
