package schedule

import "time"

// Рабочее окно дня: кандидаты на начало записи перебираются
// от открытия до закрытия с фиксированным шагом.
const (
	DayOpen     = "07:00 AM"
	DayClose    = "10:00 PM"
	ScanStepMin = 30
)

var (
	dayOpen  = mustClock(DayOpen)
	dayClose = mustClock(DayClose)
)

func mustClock(s string) time.Time {
	t, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeRange представляет полуоткрытый интервал [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// StartClock возвращает начало интервала в формате "hh:mm AM/PM".
func (tr TimeRange) StartClock() string { return FormatClock(tr.Start) }

// EndClock возвращает конец интервала в формате "hh:mm AM/PM".
func (tr TimeRange) EndClock() string { return FormatClock(tr.End) }

// HasOverlap проверяет, пересекается ли newRange хотя бы с одним из existing,
// и возвращает список конфликтующих интервалов.
func HasOverlap(newRange TimeRange, existing []TimeRange) (bool, []TimeRange) {
	var conflicts []TimeRange

	for _, tr := range existing {
		if rangesOverlap(newRange, tr) {
			conflicts = append(conflicts, tr)
		}
	}

	return len(conflicts) > 0, conflicts
}

// Полуоткрытые интервалы [Start, End) пересекаются,
// если a.Start < b.End && b.Start < a.End.
// Касание концами пересечением не считается.
func rangesOverlap(a, b TimeRange) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// FindOpenSlot ищет первый интервал требуемой длительности внутри рабочего
// окна дня, не пересекающийся ни с одним из busy. Кандидаты перебираются с
// шагом ScanStepMin минут; кандидат, конец которого выходит за закрытие,
// не рассматривается. Отсутствие подходящего слота — нормальный исход,
// а не ошибка.
func FindOpenSlot(busy []TimeRange, duration time.Duration) (TimeRange, bool) {
	if duration <= 0 {
		return TimeRange{}, false
	}

	step := time.Duration(ScanStepMin) * time.Minute
	for cur := dayOpen; !cur.Add(duration).After(dayClose); cur = cur.Add(step) {
		cand := TimeRange{Start: cur, End: cur.Add(duration)}
		if overlaps, _ := HasOverlap(cand, busy); !overlaps {
			return cand, true
		}
	}

	return TimeRange{}, false
}
