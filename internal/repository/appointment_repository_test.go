package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/agendaliz/booking-core/internal/model"
)

func newTestRepo(t *testing.T) *GormAppointmentRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewGormAppointmentRepository(db)
}

func seedAppointment(t *testing.T, repo *GormAppointmentRepository, name, date, start, end string) *model.Appointment {
	t.Helper()
	appt := &model.Appointment{
		ClientName: name,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}
	if err := repo.Create(context.Background(), appt); err != nil {
		t.Fatalf("seed %s: %v", name, err)
	}
	return appt
}

func TestGetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.GetByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_ReplacesAllMutableFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	appt := seedAppointment(t, repo, "Maria", "05/03/2026", "09:00 AM", "10:30 AM")
	appt.ImagePath = "/designs/old.png"
	if err := repo.Update(ctx, appt); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// A full rewrite must also clear fields that became empty.
	replacement := &model.Appointment{
		ID:         appt.ID,
		ClientName: "Maria G.",
		Cost:       "500",
		Date:       "06/03/2026",
		StartTime:  "11:00 AM",
		EndTime:    "12:30 PM",
		ImagePath:  "",
	}
	if err := repo.Update(ctx, replacement); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, appt.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ClientName != "Maria G." || got.Cost != "500" || got.Date != "06/03/2026" ||
		got.StartTime != "11:00 AM" || got.EndTime != "12:30 PM" || got.ImagePath != "" {
		t.Fatalf("fields not fully replaced: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update(context.Background(), &model.Appointment{
		ID:         42,
		ClientName: "ghost",
		Date:       "05/03/2026",
		StartTime:  "09:00 AM",
		EndTime:    "10:30 AM",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_AbsentIDIsNotAnError(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Delete(context.Background(), 42); err != nil {
		t.Fatalf("delete of absent id: %v", err)
	}
}

func TestListByDate_MostRecentlyCreatedFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := seedAppointment(t, repo, "Maria", "05/03/2026", "09:00 AM", "10:30 AM")
	second := seedAppointment(t, repo, "Lucia", "05/03/2026", "01:00 PM", "02:30 PM")
	seedAppointment(t, repo, "Carmen", "06/03/2026", "09:00 AM", "10:30 AM")

	appts, err := repo.ListByDate(ctx, "05/03/2026")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts))
	}
	if appts[0].ID != second.ID || appts[1].ID != first.ID {
		t.Fatalf("expected newest first, got %d then %d", appts[0].ID, appts[1].ID)
	}
}

func TestMonthAggregation_MatchesOnlyRequestedMonth(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedAppointment(t, repo, "Maria", "05/03/2026", "09:00 AM", "10:30 AM")
	seedAppointment(t, repo, "Lucia", "15/03/2026", "09:00 AM", "10:30 AM")
	seedAppointment(t, repo, "Carmen", "05/04/2026", "09:00 AM", "10:30 AM")
	seedAppointment(t, repo, "Elena", "05/03/2027", "09:00 AM", "10:30 AM")

	counts, err := repo.CountByMonth(ctx, 3, 2026)
	if err != nil {
		t.Fatalf("count by month: %v", err)
	}
	if len(counts) != 2 || counts["05/03/2026"] != 1 || counts["15/03/2026"] != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}

	names, err := repo.NamesByMonth(ctx, 3, 2026)
	if err != nil {
		t.Fatalf("names by month: %v", err)
	}
	if len(names) != 2 || names["05/03/2026"][0] != "Maria" || names["15/03/2026"][0] != "Lucia" {
		t.Fatalf("unexpected names: %+v", names)
	}
}
