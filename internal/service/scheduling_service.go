package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/agendaliz/booking-core/internal/model"
	"github.com/agendaliz/booking-core/internal/repository"
	"github.com/agendaliz/booking-core/internal/schedule"
)

// ValidationError — отсутствующее или некорректное поле формы.
// Ничего не сохраняется, состояние формы остаётся у вызывающего.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid field: %s", e.Field)
}

// ConflictError — запрошенный интервал пересекается с существующей записью.
type ConflictError struct {
	Date  string
	Start string
	End   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time %s - %s on %s is not available", e.Start, e.End, e.Date)
}

// FormState — неизменяемое состояние формы на одну отправку.
// Движок не хранит скрытого сессионного состояния между вызовами.
type FormState struct {
	ClientName string                    `json:"client_name"`
	Cost       string                    `json:"cost"`
	Date       string                    `json:"date"`
	Selection  schedule.ServiceSelection `json:"selection"`
	StartTime  string                    `json:"start_time"`
	ImagePath  string                    `json:"image_path"`
}

// SchedulingService — фасад движка записей: валидация, проверка
// конфликтов, подбор свободных слотов и агрегированные выборки
// для слоя представления.
type SchedulingService struct {
	appts  repository.AppointmentRepository
	events repository.EventRepository
	log    *zap.Logger
}

func NewSchedulingService(
	appts repository.AppointmentRepository,
	events repository.EventRepository,
	log *zap.Logger,
) *SchedulingService {
	return &SchedulingService{
		appts:  appts,
		events: events,
		log:    log,
	}
}

// CreateAppointment валидирует форму, проверяет конфликт и сохраняет
// новую запись. Время окончания всегда вычисляется из времени начала и
// выбранных услуг. При любой ошибке ничего не записывается.
func (s *SchedulingService) CreateAppointment(ctx context.Context, form FormState) (*model.Appointment, error) {
	appt, err := s.buildAppointment(ctx, 0, form)
	if err != nil {
		return nil, err
	}

	if err := s.appts.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.audit(ctx, model.EventTypeAppointmentCreated, appt.ID, appt)
	return appt, nil
}

// UpdateAppointment — та же валидация и проверка конфликта, что и при
// создании, но запись не конфликтует сама с собой. Изменяемые поля
// заменяются целиком. Отсутствующий ID — repository.ErrNotFound.
func (s *SchedulingService) UpdateAppointment(ctx context.Context, id uint, form FormState) (*model.Appointment, error) {
	appt, err := s.buildAppointment(ctx, id, form)
	if err != nil {
		return nil, err
	}
	appt.ID = id

	if err := s.appts.Update(ctx, appt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update appointment %d: %w", id, err)
	}

	s.audit(ctx, model.EventTypeAppointmentUpdated, id, appt)
	return appt, nil
}

// DeleteAppointment удаляет запись. Удаление окончательное;
// отсутствующий ID ошибкой не считается.
func (s *SchedulingService) DeleteAppointment(ctx context.Context, id uint) error {
	if err := s.appts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete appointment %d: %w", id, err)
	}

	s.audit(ctx, model.EventTypeAppointmentDeleted, id, nil)
	return nil
}

// HasConflict проверяет, пересекается ли интервал [start, end) с какой-либо
// записью на дату date. excludeID исключает запись из проверки при
// редактировании (0 — не исключать ничего; реальные ID начинаются с 1).
// Хранимая запись с нечитаемым временем пропускается и не блокирует
// бронирование.
func (s *SchedulingService) HasConflict(ctx context.Context, date, start, end string, excludeID uint) (bool, error) {
	newStart, err := schedule.ParseClock(start)
	if err != nil {
		return false, err
	}
	newEnd, err := schedule.ParseClock(end)
	if err != nil {
		return false, err
	}

	appts, err := s.appts.ListByDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("list appointments for %s: %w", date, err)
	}

	newRange := schedule.TimeRange{Start: newStart, End: newEnd}
	overlaps, _ := schedule.HasOverlap(newRange, s.busyRanges(appts, excludeID))
	return overlaps, nil
}

// SuggestSlot ищет первый свободный интервал требуемой длительности на
// дату date. nil без ошибки означает, что подходящего слота нет, —
// это нормальный исход.
func (s *SchedulingService) SuggestSlot(ctx context.Context, date string, sel schedule.ServiceSelection) (*schedule.TimeRange, error) {
	appts, err := s.appts.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", date, err)
	}

	slot, ok := schedule.FindOpenSlot(s.busyRanges(appts, 0), sel.Duration())
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

// Day возвращает записи на дату, сначала созданные последними.
func (s *SchedulingService) Day(ctx context.Context, date string) ([]model.Appointment, error) {
	appts, err := s.appts.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", date, err)
	}
	return appts, nil
}

// All возвращает все записи, сначала созданные последними.
func (s *SchedulingService) All(ctx context.Context) ([]model.Appointment, error) {
	appts, err := s.appts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

// MonthCounts возвращает количество записей по датам месяца.
func (s *SchedulingService) MonthCounts(ctx context.Context, month, year int) (map[string]int, error) {
	counts, err := s.appts.CountByMonth(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("count appointments for %02d/%04d: %w", month, year, err)
	}
	return counts, nil
}

// MonthNames возвращает имена клиентов по датам месяца.
func (s *SchedulingService) MonthNames(ctx context.Context, month, year int) (map[string][]string, error) {
	names, err := s.appts.NamesByMonth(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("list client names for %02d/%04d: %w", month, year, err)
	}
	return names, nil
}

// RecentEvents возвращает последние события аудита.
func (s *SchedulingService) RecentEvents(ctx context.Context, limit int) ([]model.Event, error) {
	events, err := s.events.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// buildAppointment валидирует форму и собирает запись с вычисленным
// временем окончания, проверяя конфликт с учётом excludeID.
func (s *SchedulingService) buildAppointment(ctx context.Context, excludeID uint, form FormState) (*model.Appointment, error) {
	if strings.TrimSpace(form.ClientName) == "" {
		return nil, &ValidationError{Field: "client_name"}
	}

	date := strings.TrimSpace(form.Date)
	if date == "" {
		// Дата по умолчанию — сегодняшний день, как и в форме.
		date = schedule.FormatDate(time.Now())
	} else if _, err := schedule.ParseDate(date); err != nil {
		return nil, &ValidationError{Field: "date"}
	}

	// Нечитаемое время начала равносильно его отсутствию.
	startAt, err := schedule.ParseClock(form.StartTime)
	if err != nil {
		return nil, &ValidationError{Field: "start_time"}
	}
	start := schedule.FormatClock(startAt)
	end := schedule.FormatClock(startAt.Add(form.Selection.Duration()))

	conflict, err := s.HasConflict(ctx, date, start, end, excludeID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, &ConflictError{Date: date, Start: start, End: end}
	}

	return &model.Appointment{
		ClientName: form.ClientName,
		Cost:       form.Cost,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		ImagePath:  form.ImagePath,
	}, nil
}

// busyRanges собирает интервалы записей, пропуская excludeID и записи
// с нечитаемым временем (fail-open).
func (s *SchedulingService) busyRanges(appts []model.Appointment, excludeID uint) []schedule.TimeRange {
	busy := make([]schedule.TimeRange, 0, len(appts))
	for _, appt := range appts {
		if excludeID != 0 && appt.ID == excludeID {
			continue
		}
		start, err := schedule.ParseClock(appt.StartTime)
		if err != nil {
			continue
		}
		end, err := schedule.ParseClock(appt.EndTime)
		if err != nil {
			continue
		}
		busy = append(busy, schedule.TimeRange{Start: start, End: end})
	}
	return busy
}

// audit пишет событие аудита. Журнал не является источником истины:
// сбой записи события логируется и не влияет на результат операции.
func (s *SchedulingService) audit(ctx context.Context, typ model.EventType, apptID uint, details any) {
	event := &model.Event{
		EventType:     typ,
		AppointmentID: &apptID,
	}
	if details != nil {
		payload, err := json.Marshal(details)
		if err == nil {
			event.Details = payload
		}
	}

	if err := s.events.Create(ctx, event); err != nil {
		s.log.Warn("audit event write failed",
			zap.String("event_type", string(typ)),
			zap.Uint("appointment_id", apptID),
			zap.Error(err),
		)
	}
}
