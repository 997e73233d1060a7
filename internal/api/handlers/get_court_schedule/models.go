package get_court_schedule

import (
	"github.com/m04kA/CourtEase-BookingService/internal/availability"
	"github.com/m04kA/CourtEase-BookingService/internal/domain"
	getCourtSchedule "github.com/m04kA/CourtEase-BookingService/internal/usecase/get_court_schedule"
)

// DayCellResponse ячейка календарной сетки
type DayCellResponse struct {
	Date           string `json:"date"` // "2026-09-15"
	Label          int    `json:"label"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsDisabled     bool   `json:"isDisabled"`
	IsToday        bool   `json:"isToday"`
	HasBooking     bool   `json:"hasBooking"`
	IsFullyBooked  bool   `json:"isFullyBooked"`
}

// HourOptionResponse стартовый час с признаком доступности
type HourOptionResponse struct {
	Hour     int  `json:"hour"`
	Bookable bool `json:"bookable"`
}

// DurationOptionResponse длительность с признаком доступности
type DurationOptionResponse struct {
	DurationHours int  `json:"durationHours"`
	Bookable      bool `json:"bookable"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	CourtID    int64  `json:"courtId"`
	CourtName  string `json:"courtName"`
	Month      string `json:"month"`      // "2026-09"
	HorizonEnd string `json:"horizonEnd"` // "2026-12-01"

	Grid []DayCellResponse `json:"grid"`

	Hours     []HourOptionResponse     `json:"hours,omitempty"`
	Durations []DurationOptionResponse `json:"durations,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getCourtSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		CourtID:    resp.CourtID,
		CourtName:  resp.CourtName,
		Month:      resp.Month.Format(domain.MonthFormat),
		HorizonEnd: resp.HorizonEnd.Format(domain.DateFormat),
		Grid:       fromGrid(resp.Grid),
	}

	if resp.Hours != nil {
		out.Hours = fromHours(resp.Hours)
	}
	if resp.Durations != nil {
		out.Durations = fromDurations(resp.Durations)
	}

	return out
}

func fromGrid(cells []availability.DayCell) []DayCellResponse {
	out := make([]DayCellResponse, len(cells))
	for i, cell := range cells {
		out[i] = DayCellResponse{
			Date:           cell.Date.Format(domain.DateFormat),
			Label:          cell.Label,
			IsCurrentMonth: cell.IsCurrentMonth,
			IsDisabled:     cell.IsDisabled,
			IsToday:        cell.IsToday,
			HasBooking:     cell.HasBooking,
			IsFullyBooked:  cell.IsFullyBooked,
		}
	}
	return out
}

func fromHours(options []availability.HourOption) []HourOptionResponse {
	out := make([]HourOptionResponse, len(options))
	for i, opt := range options {
		out[i] = HourOptionResponse{Hour: opt.Hour, Bookable: opt.Bookable}
	}
	return out
}

func fromDurations(options []availability.DurationOption) []DurationOptionResponse {
	out := make([]DurationOptionResponse, len(options))
	for i, opt := range options {
		out[i] = DurationOptionResponse{DurationHours: opt.DurationHours, Bookable: opt.Bookable}
	}
	return out
}
