package schedule

import (
	"context"

	"github.com/ShasthoSeba/telemed-scheduler/internal/audit"
	"github.com/ShasthoSeba/telemed-scheduler/internal/clock"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/models"
	"github.com/ShasthoSeba/telemed-scheduler/internal/payment"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CompletePaymentInput struct {
	PatientID     uint
	AppointmentID uint
	Method        string
}

type CompletePaymentResult struct {
	SerialNumber    int    `json:"serial_number"`
	ExactStartTime  string `json:"exact_start_time"`
	ExactEndTime    string `json:"exact_end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	TransactionID   string `json:"transaction_id"`
}

// ======================================================
// USE CASE
// ======================================================

type CompletePayment struct {
	repo    domain.Repository
	gateway payment.Gateway
	clock   clock.Clock
	audit   *audit.Dispatcher
}

func NewCompletePayment(
	repo domain.Repository,
	gateway payment.Gateway,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CompletePayment {
	return &CompletePayment{
		repo:    repo,
		gateway: gateway,
		clock:   clk,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute charges the gateway and, on success, assigns the next serial
// number under a slot row lock so two concurrent payments can never share
// one. The serial, exact time, reservation window and paid status land in a
// single update; the payment record is written in the same transaction.
//
// The appointment is re-read under the lock before the serial is assigned.
// The expiry sweep or a cancel may have run between the pre-checks and the
// transaction; writing the stale copy back would resurrect a cancelled
// appointment on a seat another patient has since taken.
//
// A declined charge leaves the appointment pending_payment and retriable.
func (uc *CompletePayment) Execute(
	ctx context.Context,
	in CompletePaymentInput,
) (*CompletePaymentResult, error) {

	now := uc.clock.Now()

	ap, err := uc.repo.GetAppointmentForPatient(ctx, in.AppointmentID, in.PatientID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanPay(domain.PaymentStatus(ap.PaymentStatus)); err != nil {
		return nil, err
	}
	if ap.Status == string(domain.StatusCancelled) {
		return nil, httperr.ErrInvalidState("appointment_cancelled")
	}
	if now.After(ap.PaymentDeadline) {
		return nil, httperr.ErrTooLate("payment_deadline_passed", "The payment deadline for this appointment has passed.")
	}

	gw, err := uc.gateway.Process(ctx, in.Method, ap.AmountBDT)
	if err != nil {
		return nil, err
	}

	var result *CompletePaymentResult

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {

		slot, err := tx.GetSlotForUpdate(ctx, ap.SlotID)
		if err != nil {
			return err
		}

		ap, err = tx.GetAppointmentForPatient(ctx, in.AppointmentID, in.PatientID)
		if err != nil {
			return err
		}
		if ap.PaymentStatus != string(domain.PaymentPending) {
			return httperr.ErrConflict("already_paid", "This appointment was already paid.")
		}
		if ap.Status == string(domain.StatusCancelled) {
			return httperr.ErrConflict("appointment_cancelled", "This appointment was cancelled before the payment completed.")
		}

		maxSerial, err := tx.MaxSerialNumber(ctx, ap.SlotID)
		if err != nil {
			return err
		}

		assignment, err := domain.AssignSerial(slot, ap.AppointmentDate, domain.NextSerial(maxSerial))
		if err != nil {
			return err
		}

		assignment.Apply(ap, now)

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		commission, earnings := payment.Split(ap.AmountBDT)
		record := &models.Payment{
			AppointmentID:   ap.ID,
			PatientID:       ap.PatientID,
			DoctorID:        ap.DoctorID,
			TotalAmount:     ap.AmountBDT,
			AdminCommission: commission,
			DoctorEarnings:  earnings,
			PaymentMethod:   in.Method,
			PaymentStatus:   string(domain.PaymentCompleted),
			TransactionID:   gw.TransactionID,
			PaidAt:          now,
		}
		if err := tx.CreatePayment(ctx, record); err != nil {
			return err
		}

		result = &CompletePaymentResult{
			SerialNumber:    assignment.SerialNumber,
			ExactStartTime:  assignment.ExactStartTime,
			ExactEndTime:    assignment.ExactEndTime,
			DurationMinutes: assignment.DurationMinutes,
			TransactionID:   gw.TransactionID,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.PatientID,
		Action:   "payment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"serial_number":  result.SerialNumber,
			"transaction_id": result.TransactionID,
			"method":         in.Method,
		},
	})

	return result, nil
}
