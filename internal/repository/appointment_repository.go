package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/agendaliz/booking-core/internal/model"
)

// ErrNotFound возвращается, когда запись с указанным ID отсутствует.
var ErrNotFound = errors.New("record not found")

type AppointmentRepository interface {
	// Создать запись; ID присваивается хранилищем.
	Create(ctx context.Context, appt *model.Appointment) error
	// Полностью заменить изменяемые поля записи.
	// Возвращает ErrNotFound, если записи с таким ID нет.
	Update(ctx context.Context, appt *model.Appointment) error
	// Удалить запись. Отсутствующий ID ошибкой не считается.
	Delete(ctx context.Context, id uint) error
	// Найти запись по ID.
	GetByID(ctx context.Context, id uint) (*model.Appointment, error)
	// Записи на конкретную дату, сначала созданные последними.
	ListByDate(ctx context.Context, date string) ([]model.Appointment, error)
	// Все записи, сначала созданные последними.
	ListAll(ctx context.Context) ([]model.Appointment, error)
	// Количество записей по датам указанного месяца.
	CountByMonth(ctx context.Context, month, year int) (map[string]int, error)
	// Имена клиентов по датам указанного месяца.
	NamesByMonth(ctx context.Context, month, year int) (map[string][]string, error)
}

// Реализация на GORM.
type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appt *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

func (r *GormAppointmentRepository) Update(ctx context.Context, appt *model.Appointment) error {
	res := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ?", appt.ID).
		Select("client_name", "cost", "date", "start_time", "end_time", "image_path").
		Updates(appt)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Appointment{}, "id = ?", id).Error
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id uint) (*model.Appointment, error) {
	var appt model.Appointment
	if err := r.db.WithContext(ctx).First(&appt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (r *GormAppointmentRepository) ListByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("id DESC").
		Find(&appts).
		Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *GormAppointmentRepository) ListAll(ctx context.Context) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&appts).
		Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *GormAppointmentRepository) CountByMonth(ctx context.Context, month, year int) (map[string]int, error) {
	var rows []struct {
		Date string
		N    int
	}
	err := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Select("date, COUNT(*) AS n").
		Where("date LIKE ?", monthPattern(month, year)).
		Group("date").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Date] = row.N
	}
	return counts, nil
}

func (r *GormAppointmentRepository) NamesByMonth(ctx context.Context, month, year int) (map[string][]string, error) {
	var rows []struct {
		Date       string
		ClientName string
	}
	err := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Select("date, client_name").
		Where("date LIKE ?", monthPattern(month, year)).
		Order("id ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	names := make(map[string][]string)
	for _, row := range rows {
		names[row.Date] = append(names[row.Date], row.ClientName)
	}
	return names, nil
}

// Шаблон "%/MM/YYYY" для выборки всех дат месяца по текстовой колонке.
func monthPattern(month, year int) string {
	return fmt.Sprintf("%%/%02d/%04d", month, year)
}
