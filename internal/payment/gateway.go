package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
)

// Supported methods.
const (
	MethodBkash  = "bkash"
	MethodNagad  = "nagad"
	MethodRocket = "rocket"
	MethodCard   = "card"
)

// AdminCommissionRate is the platform's fixed cut of every consultation fee.
const AdminCommissionRate = 0.10

type Result struct {
	TransactionID string
}

// Gateway is the core's only view of the payment processor: a method and an
// amount go in, a transaction id comes out or the payment failed.
type Gateway interface {
	Process(ctx context.Context, method string, amount float64) (Result, error)
}

var methodPrefixes = map[string]string{
	MethodBkash:  "BKS",
	MethodNagad:  "NGD",
	MethodRocket: "RKT",
	MethodCard:   "CRD",
}

func IsValidMethod(method string) bool {
	_, ok := methodPrefixes[method]
	return ok
}

// Split divides a gross amount into the platform commission and the
// doctor's earnings.
func Split(amount float64) (commission, earnings float64) {
	commission = amount * AdminCommissionRate
	return commission, amount - commission
}

// MockGateway stands in for the real PSP integration. It accepts every
// charge and issues a method-prefixed transaction id.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) Process(ctx context.Context, method string, amount float64) (Result, error) {
	prefix, ok := methodPrefixes[method]
	if !ok {
		return Result{}, httperr.ErrValidation("invalid_payment_method", "Unknown payment method.")
	}

	if amount <= 0 {
		return Result{}, httperr.ErrPaymentFailed("invalid_amount", "Payment amount must be positive.")
	}

	txID := prefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return Result{TransactionID: txID}, nil
}

var _ Gateway = (*MockGateway)(nil)
