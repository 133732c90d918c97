package invoice

import (
	"errors"
	"time"

	"hotel-reservation/internal/domain/money"

	"github.com/google/uuid"
)

var ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPartial Status = "PARTIAL"
	StatusPaid    Status = "PAID"
)

func (s Status) String() string { return string(s) }

// Invoice is issued with the reservation and falls due on the check-in date.
type Invoice struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        money.Money
	amountPaid    money.Money
	currency      string
	dueDate       time.Time
	status        Status
}

func NewInvoice(reservationID uuid.UUID, amount money.Money, currency string, dueDate time.Time) *Invoice {
	return &Invoice{
		id:            uuid.New(),
		reservationID: reservationID,
		amount:        amount,
		amountPaid:    money.Zero(),
		currency:      currency,
		dueDate:       dueDate,
		status:        StatusPending,
	}
}

func Reconstruct(id, reservationID uuid.UUID, amount, amountPaid money.Money, currency string, dueDate time.Time, status Status) *Invoice {
	return &Invoice{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		amountPaid:    amountPaid,
		currency:      currency,
		dueDate:       dueDate,
		status:        status,
	}
}

// ApplyPayment accumulates a payment; the invoice is PAID once the running total
// covers the amount, PARTIAL before that.
func (i *Invoice) ApplyPayment(amount money.Money) error {
	if amount.Minor() <= 0 {
		return ErrInvalidPaymentAmount
	}
	i.amountPaid = i.amountPaid.Add(amount)
	if i.amountPaid.GreaterThanOrEqual(i.amount) {
		i.status = StatusPaid
	} else {
		i.status = StatusPartial
	}
	return nil
}

func (i *Invoice) Outstanding() money.Money {
	if i.amountPaid.GreaterThanOrEqual(i.amount) {
		return money.Zero()
	}
	return i.amount.Sub(i.amountPaid)
}

func (i *Invoice) ID() uuid.UUID            { return i.id }
func (i *Invoice) ReservationID() uuid.UUID { return i.reservationID }
func (i *Invoice) Amount() money.Money      { return i.amount }
func (i *Invoice) AmountPaid() money.Money  { return i.amountPaid }
func (i *Invoice) Currency() string         { return i.currency }
func (i *Invoice) DueDate() time.Time       { return i.dueDate }
func (i *Invoice) Status() Status           { return i.status }
