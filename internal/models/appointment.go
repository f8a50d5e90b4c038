package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint `json:"patient_id"`
	Patient   User `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DoctorID uint `json:"doctor_id"`
	Doctor   User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	SlotID uint             `gorm:"index;uniqueIndex:idx_slot_serial" json:"slot_id"`
	Slot   AvailabilitySlot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"slot"`

	// Absolute moment the slot window opens on the booked day. The exact
	// per-patient time is only known once a serial number is assigned.
	AppointmentDate time.Time `json:"appointment_date"`

	Status        string `gorm:"size:20;default:'pending_payment'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	PaymentDeadline time.Time `json:"payment_deadline"`
	AmountBDT       float64   `json:"amount_bdt"`

	// Assigned together on payment completion, never individually.
	SerialNumber         *int    `gorm:"uniqueIndex:idx_slot_serial" json:"serial_number"`
	ExactAppointmentTime *string `gorm:"size:5" json:"exact_appointment_time"`

	ReservationStartTime       *time.Time `json:"reservation_start_time"`
	ReservationEndTime         *time.Time `json:"reservation_end_time"`
	ReservationDurationMinutes *int       `json:"reservation_duration_minutes"`

	PatientNotes string `gorm:"size:500" json:"patient_notes"`

	PaidAt      *time.Time `json:"paid_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
