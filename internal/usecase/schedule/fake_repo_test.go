package schedule

import (
	"context"
	"sync"
	"time"

	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
)

// fakeStore is the shared state behind fakeRepo. InTx holds the store lock
// for the whole callback, which gives the tests the same serialization the
// real repository gets from slot row locks.
type fakeStore struct {
	mu sync.Mutex

	slots        map[uint]models.AvailabilitySlot
	appointments map[uint]models.Appointment
	payments     map[uint]models.Payment

	nextSlotID        uint
	nextAppointmentID uint
	nextPaymentID     uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:        make(map[uint]models.AvailabilitySlot),
		appointments: make(map[uint]models.Appointment),
		payments:     make(map[uint]models.Payment),
	}
}

type fakeRepo struct {
	s *fakeStore

	// set while running inside InTx, where the store lock is already held
	locked bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{s: newFakeStore()}
}

func (r *fakeRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

// -------- Slots --------

func (r *fakeRepo) CreateSlots(_ context.Context, slots []models.AvailabilitySlot) error {
	defer r.lock()()

	for i := range slots {
		r.s.nextSlotID++
		slots[i].ID = r.s.nextSlotID
		r.s.slots[slots[i].ID] = slots[i]
	}
	return nil
}

func (r *fakeRepo) GetSlotByID(_ context.Context, id uint) (*models.AvailabilitySlot, error) {
	defer r.lock()()

	slot, ok := r.s.slots[id]
	if !ok {
		return nil, httperr.ErrNotFound("slot_not_found", "Slot not found.")
	}
	return &slot, nil
}

func (r *fakeRepo) GetSlotForUpdate(ctx context.Context, id uint) (*models.AvailabilitySlot, error) {
	return r.GetSlotByID(ctx, id)
}

func (r *fakeRepo) ListSlotsForDoctor(_ context.Context, doctorID uint, from, to time.Time) ([]models.AvailabilitySlot, error) {
	defer r.lock()()

	var out []models.AvailabilitySlot
	for _, slot := range r.s.slots {
		if slot.DoctorID != doctorID {
			continue
		}
		if slot.SlotDate.Before(from) || slot.SlotDate.After(to) {
			continue
		}
		out = append(out, slot)
	}
	return out, nil
}

func (r *fakeRepo) DeleteSlot(_ context.Context, slotID, doctorID uint) error {
	defer r.lock()()

	slot, ok := r.s.slots[slotID]
	if !ok || slot.DoctorID != doctorID {
		return httperr.ErrNotFound("slot_not_found", "Slot not found.")
	}
	delete(r.s.slots, slotID)
	return nil
}

// -------- Reservation ledger --------

func (r *fakeRepo) CountActiveAppointments(_ context.Context, slotID uint) (int, error) {
	defer r.lock()()

	count := 0
	for _, ap := range r.s.appointments {
		if ap.SlotID != slotID {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.PaymentStatus != string(domain.PaymentPaid) && ap.PaymentStatus != string(domain.PaymentPending) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeRepo) MaxSerialNumber(_ context.Context, slotID uint) (int, error) {
	defer r.lock()()

	max := 0
	for _, ap := range r.s.appointments {
		if ap.SlotID == slotID && ap.SerialNumber != nil && *ap.SerialNumber > max {
			max = *ap.SerialNumber
		}
	}
	return max, nil
}

// -------- Appointments --------

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	defer r.lock()()

	r.s.nextAppointmentID++
	ap.ID = r.s.nextAppointmentID
	r.s.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	defer r.lock()()

	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	return &ap, nil
}

func (r *fakeRepo) GetAppointmentForPatient(_ context.Context, id, patientID uint) (*models.Appointment, error) {
	defer r.lock()()

	ap, ok := r.s.appointments[id]
	if !ok || ap.PatientID != patientID {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	return &ap, nil
}

func (r *fakeRepo) GetAppointmentForDoctor(_ context.Context, id, doctorID uint) (*models.Appointment, error) {
	defer r.lock()()

	ap, ok := r.s.appointments[id]
	if !ok || ap.DoctorID != doctorID {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	return &ap, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	defer r.lock()()

	if _, ok := r.s.appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	r.s.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) ListAppointmentsForPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	defer r.lock()()

	var out []models.Appointment
	for _, ap := range r.s.appointments {
		if ap.PatientID == patientID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDoctor(_ context.Context, doctorID uint) ([]models.Appointment, error) {
	defer r.lock()()

	var out []models.Appointment
	for _, ap := range r.s.appointments {
		if ap.DoctorID == doctorID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ExpireUnpaidReservations(_ context.Context, now time.Time) (int64, error) {
	defer r.lock()()

	var expired int64
	for id, ap := range r.s.appointments {
		if ap.PaymentStatus != string(domain.PaymentPending) {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if !ap.PaymentDeadline.Before(now) {
			continue
		}
		ap.Status = string(domain.StatusCancelled)
		cancelledAt := now
		ap.CancelledAt = &cancelledAt
		r.s.appointments[id] = ap
		expired++
	}
	return expired, nil
}

// -------- Payments --------

func (r *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	defer r.lock()()

	for _, existing := range r.s.payments {
		if existing.AppointmentID == p.AppointmentID {
			return httperr.ErrConflict("payment_exists", "A payment already exists for this appointment.")
		}
	}

	r.s.nextPaymentID++
	p.ID = r.s.nextPaymentID
	r.s.payments[p.ID] = *p
	return nil
}

// -------- Transactions --------

func (r *fakeRepo) InTx(_ context.Context, fn func(domain.Repository) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return fn(&fakeRepo{s: r.s, locked: true})
}

var _ domain.Repository = (*fakeRepo)(nil)
