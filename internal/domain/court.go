package domain

import "time"

// Court корт, доступный для бронирования
// Каталог кортов управляется дашбордом площадок — этот сервис его только читает
type Court struct {
	ID           int64
	VenueName    string
	Name         string
	Sport        string
	PricePerHour float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
