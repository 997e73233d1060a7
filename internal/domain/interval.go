package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Интервалы пересекаются, только если:
// - начало первого СТРОГО раньше конца второго И
// - конец первого СТРОГО позже начала второго
// Граничные случаи (конец одного == начало другого) пересечением НЕ считаются
//
// Примеры:
// - [10:00, 12:00) и [11:00, 13:00) → пересекаются
// - [10:00, 12:00) и [12:00, 13:00) → НЕ пересекаются (граничат)
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Overlaps проверяет пересечение с другим интервалом
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

// IsValid сообщает, имеет ли интервал положительную длительность
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}
