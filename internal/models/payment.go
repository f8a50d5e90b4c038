package models

import "time"

// Payment is the immutable record of one completed gateway transaction.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment"`

	PatientID uint `json:"patient_id"`
	DoctorID  uint `json:"doctor_id"`

	TotalAmount     float64 `json:"total_amount"`
	AdminCommission float64 `json:"admin_commission"`
	DoctorEarnings  float64 `json:"doctor_earnings"`

	PaymentMethod string `gorm:"size:20" json:"payment_method"`
	PaymentStatus string `gorm:"size:20;default:'completed'" json:"payment_status"`
	TransactionID string `gorm:"size:64;uniqueIndex" json:"transaction_id"`

	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}
