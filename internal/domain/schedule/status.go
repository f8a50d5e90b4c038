package schedule

import "github.com/ShasthoSeba/telemed-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusReserved       Status = "reserved"
	StatusConfirmed      Status = "confirmed"
	StatusCancelled      Status = "cancelled"
	StatusCompleted      Status = "completed"
	StatusNoShow         Status = "no_show"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ===============================
// Validations
// ===============================

// CanCancel: anything not yet terminal can be cancelled (the 48-hour rule
// is checked separately against the appointment date).
func CanCancel(current Status) error {
	switch current {
	case StatusPendingPayment, StatusReserved, StatusConfirmed:
		return nil
	}
	return httperr.ErrInvalidState("invalid_state")
}

// CanComplete: only a paid, confirmed appointment can be marked done.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrInvalidState("invalid_state")
	}
	return nil
}

// CanPay: payment may only complete while the booking is still unpaid.
func CanPay(current PaymentStatus) error {
	if current != PaymentPending {
		return httperr.ErrInvalidState("already_paid")
	}
	return nil
}

// InitialStatus depends on whether the patient heads to the gateway right
// away or reserves the seat to pay later.
func InitialStatus(payNow bool) Status {
	if payNow {
		return StatusPendingPayment
	}
	return StatusReserved
}
