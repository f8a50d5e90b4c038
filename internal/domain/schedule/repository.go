package schedule

import (
	"context"
	"time"

	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

type Repository interface {
	// -------- Slots --------
	CreateSlots(
		ctx context.Context,
		slots []models.AvailabilitySlot,
	) error

	GetSlotByID(
		ctx context.Context,
		id uint,
	) (*models.AvailabilitySlot, error)

	// GetSlotForUpdate takes a row lock on the slot. Only meaningful inside
	// InTx; every capacity check and serial assignment goes through it.
	GetSlotForUpdate(
		ctx context.Context,
		id uint,
	) (*models.AvailabilitySlot, error)

	ListSlotsForDoctor(
		ctx context.Context,
		doctorID uint,
		from time.Time,
		to time.Time,
	) ([]models.AvailabilitySlot, error)

	DeleteSlot(
		ctx context.Context,
		slotID uint,
		doctorID uint,
	) error

	// -------- Reservation ledger --------

	// CountActiveAppointments counts appointments on the slot with payment
	// pending or paid that are not cancelled.
	CountActiveAppointments(
		ctx context.Context,
		slotID uint,
	) (int, error)

	// MaxSerialNumber is the highest assigned serial on the slot, 0 if none.
	MaxSerialNumber(
		ctx context.Context,
		slotID uint,
	) (int, error)

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentForPatient(
		ctx context.Context,
		appointmentID uint,
		patientID uint,
	) (*models.Appointment, error)

	GetAppointmentForDoctor(
		ctx context.Context,
		appointmentID uint,
		doctorID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDoctor(
		ctx context.Context,
		doctorID uint,
	) ([]models.Appointment, error)

	// ExpireUnpaidReservations cancels every appointment whose payment
	// deadline has passed while still pending, as one conditional update.
	// Running it twice is a no-op the second time.
	ExpireUnpaidReservations(
		ctx context.Context,
		now time.Time,
	) (int64, error)

	// -------- Payments --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	// InTx runs fn against a repository bound to a single transaction.
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
