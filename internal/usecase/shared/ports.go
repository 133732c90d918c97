package shared

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/pkg/errs"
)

var ErrLockBusy = errs.New("lock is held by another caller")

// Locker hands out short-lived exclusive locks keyed by name.
type Locker interface {
	// Acquire returns ErrLockBusy when the key is already held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

// Metrics records business events. Implementations must be safe for concurrent use.
type Metrics interface {
	ReservationAttempt(outcome string)
	ReservationTransition(to string)
	PaymentReconciliation(outcome string)
}

type NopMetrics struct{}

func (NopMetrics) ReservationAttempt(string)    {}
func (NopMetrics) ReservationTransition(string) {}
func (NopMetrics) PaymentReconciliation(string) {}

type CheckoutRequest struct {
	OrderID   string
	Amount    money.Money
	Currency  string
	Items     string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type CheckoutPayload struct {
	MerchantID string `json:"merchant_id"`
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
	NotifyURL  string `json:"notify_url"`
	OrderID    string `json:"order_id"`
	Items      string `json:"items"`
	Currency   string `json:"currency"`
	Amount     string `json:"amount"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Hash       string `json:"hash"`
	ActionURL  string `json:"action_url"`
}

// GatewayNotification is the server-to-server callback of the hosted payment page.
type GatewayNotification struct {
	MerchantID string
	OrderID    string
	PaymentID  string
	Amount     string
	Currency   string
	StatusCode string
	Signature  string
	Method     string
}

type PaymentGateway interface {
	Checkout(req CheckoutRequest) CheckoutPayload
	// VerifyNotification returns errs.ErrInvalidSignature unless the signature matches.
	VerifyNotification(n GatewayNotification) error
}
