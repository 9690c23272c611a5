package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMalformedTime = errors.New("malformed clock time")
	ErrMalformedDate = errors.New("malformed date")
)

const (
	// Формат времени в 12-часовой записи с меридианом, например "07:00 AM".
	ClockLayout = "03:04 PM"
	// Формат календарной даты, например "31/08/2026".
	DateLayout = "02/01/2006"
)

// Базовая длительность записи в минутах, без дополнительных услуг.
const BaseDurationMinutes = 90

// ServiceSelection — набор выбранных дополнительных услуг.
// Каждая услуга добавляет фиксированное время к базовой длительности.
type ServiceSelection struct {
	HardDesign bool `json:"hard_design"`
	PediSpa    bool `json:"pedi_spa"`
	Eyebrows   bool `json:"eyebrows"`
}

// DurationMinutes возвращает полную длительность записи в минутах.
func (s ServiceSelection) DurationMinutes() int {
	d := BaseDurationMinutes
	if s.HardDesign {
		d += 60
	}
	if s.PediSpa {
		d += 45
	}
	if s.Eyebrows {
		d += 60
	}
	return d
}

// Duration — то же самое как time.Duration.
func (s ServiceSelection) Duration() time.Duration {
	return time.Duration(s.DurationMinutes()) * time.Minute
}

// ParseClock разбирает время вида "hh:mm AM/PM".
// Несовпадение с форматом оборачивается в ErrMalformedTime.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return t, nil
}

// FormatClock форматирует время обратно в "hh:mm AM/PM".
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseDate разбирает дату вида "DD/MM/YYYY".
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// FormatDate форматирует дату в "DD/MM/YYYY".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ComputeEnd считает время окончания: начало плюс длительность выбранных услуг.
// Переход через полночь допустим, наружу уходит только компонент времени суток.
func ComputeEnd(start string, sel ServiceSelection) (string, error) {
	t, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return FormatClock(t.Add(sel.Duration())), nil
}
