package model

import "time"

// appointments
//
// Дата и время хранятся отформатированным текстом ("DD/MM/YYYY" и
// "hh:mm AM/PM"); сравнение выполняется только после явного разбора,
// лексикографический порядок этих форматов не совпадает с хронологическим.
type Appointment struct {
	// Целочисленный ID с автоинкрементом; после удаления записи
	// идентификатор повторно не используется.
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ClientName string `gorm:"type:varchar(255);not null" json:"client_name"`
	// Стоимость хранится как введена, без денежной логики.
	Cost string `gorm:"type:varchar(32)" json:"cost"`

	Date      string `gorm:"type:varchar(10);not null;index" json:"date"`
	StartTime string `gorm:"type:varchar(8);not null" json:"start_time"`
	EndTime   string `gorm:"type:varchar(8);not null" json:"end_time"`

	// Путь к приложенному изображению дизайна; может быть пустым.
	ImagePath string `gorm:"type:text" json:"image_path"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
