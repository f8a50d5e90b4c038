package httperr

import "errors"

// Kind classifies a business failure so handlers can pick a status code
// and callers can tell retriable failures apart from terminal ones.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindTooLate          Kind = "too_late"
	KindNotFound         Kind = "not_found"
	KindPaymentFailed    Kind = "payment_failed"
	KindConflict         Kind = "conflict"
	KindInvalidState     Kind = "invalid_state"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func ErrValidation(code, message string) error {
	return ErrBusiness(KindValidation, code, message)
}

func ErrCapacityExceeded(code, message string) error {
	return ErrBusiness(KindCapacityExceeded, code, message)
}

func ErrTooLate(code, message string) error {
	return ErrBusiness(KindTooLate, code, message)
}

func ErrNotFound(code, message string) error {
	return ErrBusiness(KindNotFound, code, message)
}

func ErrPaymentFailed(code, message string) error {
	return ErrBusiness(KindPaymentFailed, code, message)
}

// ErrConflict marks lock/transaction contention on a slot. The whole
// operation is safe to retry.
func ErrConflict(code, message string) error {
	return ErrBusiness(KindConflict, code, message)
}

func ErrInvalidState(code string) error {
	return ErrBusiness(KindInvalidState, code, "operation not allowed in the current state")
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
