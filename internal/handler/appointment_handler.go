package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agendaliz/booking-core/internal/repository"
	"github.com/agendaliz/booking-core/internal/schedule"
	"github.com/agendaliz/booking-core/internal/service"
)

// AppointmentHandler — JSON-интерфейс движка для слоя представления.
// Сам по себе ничего не решает: разбирает запрос, зовёт фасад,
// отображает типизированные ошибки в статусы.
type AppointmentHandler struct {
	svc *service.SchedulingService
	log *zap.Logger
}

func NewAppointmentHandler(svc *service.SchedulingService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, log: log}
}

// Create обрабатывает отправку формы новой записи.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var form service.FormState
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	appt, err := h.svc.CreateAppointment(c.UserContext(), form)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(appt)
}

// Update обрабатывает отправку формы редактирования существующей записи.
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var form service.FormState
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	appt, err := h.svc.UpdateAppointment(c.UserContext(), uint(id), form)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(appt)
}

// Delete удаляет запись по ID.
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.svc.DeleteAppointment(c.UserContext(), uint(id)); err != nil {
		return h.renderError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// List возвращает записи дня (?date=DD/MM/YYYY) либо постраничный
// список всех записей.
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	if date := c.Query("date"); date != "" {
		appts, err := h.svc.Day(c.UserContext(), date)
		if err != nil {
			return h.renderError(c, err)
		}
		return c.JSON(appts)
	}

	appts, err := h.svc.All(c.UserContext())
	if err != nil {
		return h.renderError(c, err)
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 0)
	return c.JSON(schedule.Paginate(appts, page, pageSize))
}

// MonthCounts возвращает количество записей по датам месяца
// для плотности календарной сетки.
func (h *AppointmentHandler) MonthCounts(c *fiber.Ctx) error {
	year, month, ok := monthParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year or month"})
	}

	counts, err := h.svc.MonthCounts(c.UserContext(), month, year)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(counts)
}

// MonthNames возвращает имена клиентов по датам месяца
// для подписей календарной сетки.
func (h *AppointmentHandler) MonthNames(c *fiber.Ctx) error {
	year, month, ok := monthParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid year or month"})
	}

	names, err := h.svc.MonthNames(c.UserContext(), month, year)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(names)
}

// Suggest подбирает первый свободный слот на дату с учётом выбранных
// услуг. 204 — свободного слота нет.
func (h *AppointmentHandler) Suggest(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = schedule.FormatDate(time.Now())
	}

	sel := schedule.ServiceSelection{
		HardDesign: c.QueryBool("hard_design"),
		PediSpa:    c.QueryBool("pedi_spa"),
		Eyebrows:   c.QueryBool("eyebrows"),
	}

	slot, err := h.svc.SuggestSlot(c.UserContext(), date, sel)
	if err != nil {
		return h.renderError(c, err)
	}
	if slot == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.JSON(fiber.Map{
		"start": slot.StartClock(),
		"end":   slot.EndClock(),
	})
}

// Events возвращает последние события аудита.
func (h *AppointmentHandler) Events(c *fiber.Ctx) error {
	events, err := h.svc.RecentEvents(c.UserContext(), c.QueryInt("limit", 50))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(events)
}

func (h *AppointmentHandler) renderError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	var cErr *service.ConflictError

	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "validation",
			"field": vErr.Field,
		})
	case errors.As(err, &cErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "conflict",
			"message": cErr.Error(),
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		h.log.Error("appointment request failed",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage"})
	}
}

func monthParams(c *fiber.Ctx) (year, month int, ok bool) {
	year, errY := c.ParamsInt("year")
	month, errM := c.ParamsInt("month")
	if errY != nil || errM != nil || year <= 0 || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
