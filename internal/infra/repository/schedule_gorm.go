package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db  *gorm.DB
	loc *time.Location
}

func NewScheduleGormRepository(db *gorm.DB, loc *time.Location) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db, loc: loc}
}

// anchorSlot re-homes the date column in the clinic timezone. The driver
// decodes Postgres dates to midnight UTC, which would shift every derived
// timestamp by the UTC offset.
func (r *ScheduleGormRepository) anchorSlot(slot *models.AvailabilitySlot) {
	slot.SlotDate = domain.AnchorDate(slot.SlotDate, r.loc)
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateSlots(
	ctx context.Context,
	slots []models.AvailabilitySlot,
) error {
	if err := r.db.WithContext(ctx).Create(&slots).Error; err != nil {
		return fmt.Errorf("create slots: %w", err)
	}
	return nil
}

func (r *ScheduleGormRepository) GetSlotByID(
	ctx context.Context,
	id uint,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("slot_not_found", "Slot not found.")
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}

	r.anchorSlot(&slot)
	return &slot, nil
}

func (r *ScheduleGormRepository) GetSlotForUpdate(
	ctx context.Context,
	id uint,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("slot_not_found", "Slot not found.")
		}
		return nil, fmt.Errorf("lock slot: %w", err)
	}

	r.anchorSlot(&slot)
	return &slot, nil
}

func (r *ScheduleGormRepository) ListSlotsForDoctor(
	ctx context.Context,
	doctorID uint,
	from time.Time,
	to time.Time,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND slot_date >= ? AND slot_date <= ?",
			doctorID, from, to,
		).
		Order("slot_date ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	for i := range slots {
		r.anchorSlot(&slots[i])
	}
	return slots, nil
}

func (r *ScheduleGormRepository) DeleteSlot(
	ctx context.Context,
	slotID uint,
	doctorID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", slotID, doctorID).
		Delete(&models.AvailabilitySlot{})

	if res.Error != nil {
		return fmt.Errorf("delete slot: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("slot_not_found", "Slot not found.")
	}
	return nil
}

// --------------------------------------------------
// Reservation ledger
// --------------------------------------------------

func (r *ScheduleGormRepository) CountActiveAppointments(
	ctx context.Context,
	slotID uint,
) (int, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"slot_id = ? AND payment_status IN ? AND status <> ?",
			slotID,
			[]string{string(domain.PaymentPaid), string(domain.PaymentPending)},
			string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count active appointments: %w", err)
	}

	return int(count), nil
}

func (r *ScheduleGormRepository) MaxSerialNumber(
	ctx context.Context,
	slotID uint,
) (int, error) {

	var max *int
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("slot_id = ? AND serial_number IS NOT NULL", slotID).
		Select("MAX(serial_number)").
		Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("max serial number: %w", err)
	}

	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *ScheduleGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	r.anchorSlot(&ap.Slot)
	return &ap, nil
}

func (r *ScheduleGormRepository) GetAppointmentForPatient(
	ctx context.Context,
	appointmentID uint,
	patientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Where("id = ? AND patient_id = ?", appointmentID, patientID).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
		}
		return nil, fmt.Errorf("get appointment for patient: %w", err)
	}

	r.anchorSlot(&ap.Slot)
	return &ap, nil
}

func (r *ScheduleGormRepository) GetAppointmentForDoctor(
	ctx context.Context,
	appointmentID uint,
	doctorID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Where("id = ? AND doctor_id = ?", appointmentID, doctorID).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
		}
		return nil, fmt.Errorf("get appointment for doctor: %w", err)
	}

	r.anchorSlot(&ap.Slot)
	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// unique (slot_id, serial_number) tripped: another payment won
			// the serial. The whole operation is retriable.
			return httperr.ErrConflict("serial_conflict", "Another payment was being processed for this slot. Please retry.")
		}
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

func (r *ScheduleGormRepository) ListAppointmentsForPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, fmt.Errorf("list appointments for patient: %w", err)
	}

	for i := range aps {
		r.anchorSlot(&aps[i].Slot)
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, fmt.Errorf("list appointments for doctor: %w", err)
	}

	for i := range aps {
		r.anchorSlot(&aps[i].Slot)
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ExpireUnpaidReservations(
	ctx context.Context,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"payment_status = ? AND payment_deadline < ? AND status <> ?",
			string(domain.PaymentPending),
			now,
			string(domain.StatusCancelled),
		).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": now,
		})

	if res.Error != nil {
		return 0, fmt.Errorf("expire unpaid reservations: %w", res.Error)
	}

	return res.RowsAffected, nil
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func (r *ScheduleGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrConflict("payment_exists", "A payment already exists for this appointment.")
		}
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *ScheduleGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx, loc: r.loc})
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
