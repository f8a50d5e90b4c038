package models

import "time"

// AvailabilitySlot is one bookable consultation window on a single calendar
// day. StartTime/EndTime are wall-clock "15:04" strings; the absolute moment
// a patient is seen is derived from the serial number at payment time.
type AvailabilitySlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint `gorm:"index:idx_doctor_date" json:"doctor_id"`
	Doctor   User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	SlotDate  time.Time `gorm:"type:date;index:idx_doctor_date" json:"slot_date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	ConsultationFee     float64 `json:"consultation_fee"`
	AppointmentDuration int     `json:"appointment_duration"`
	MaxAppointments     int     `json:"max_appointments"`

	AllowSameDayBooking bool `gorm:"default:false" json:"allow_same_day_booking"`
	IsAvailable         bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
