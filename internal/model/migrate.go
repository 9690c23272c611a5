package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей журнала записей.
// Повторный вызов безопасен: существующая схема не пересоздаётся.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Appointment{},
		&Event{},
	)
}
