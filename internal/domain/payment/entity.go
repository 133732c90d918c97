package payment

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod     = errors.New("invalid payment method")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
	ErrInvalidStatusCode = errors.New("invalid gateway status code")
	ErrUnknownOrder      = errs.ErrUnknownOrder
)

type Method string

const (
	MethodCard    Method = "CARD"
	MethodCash    Method = "CASH"
	MethodPayHere Method = "PAYHERE"
)

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case MethodCard, MethodCash, MethodPayHere:
		return m, nil
	default:
		return "", ErrInvalidMethod
	}
}

// StatusCode is the gateway's payment outcome.
type StatusCode int

const (
	StatusSuccess     StatusCode = 2
	StatusPending     StatusCode = 0
	StatusCancelled   StatusCode = -1
	StatusFailed      StatusCode = -2
	StatusChargedBack StatusCode = -3
)

func ParseStatusCode(s string) (StatusCode, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidStatusCode
	}
	code := StatusCode(v)
	switch code {
	case StatusSuccess, StatusPending, StatusCancelled, StatusFailed, StatusChargedBack:
		return code, nil
	default:
		return 0, ErrInvalidStatusCode
	}
}

func (c StatusCode) IsSuccess() bool { return c == StatusSuccess }

func (c StatusCode) String() string { return strconv.Itoa(int(c)) }

const orderRefPrefix = "BK-"

// OrderRef is the external order id sent to the gateway for a reservation.
type OrderRef string

func NewOrderRef(reservationID uuid.UUID) OrderRef {
	return OrderRef(orderRefPrefix + reservationID.String())
}

// ReservationID parses the reservation id back out of the reference.
func (o OrderRef) ReservationID() (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(string(o), orderRefPrefix)
	if !ok {
		return uuid.Nil, ErrUnknownOrder
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Wrapf(ErrUnknownOrder, "order %q: %v", string(o), err)
	}
	return id, nil
}

func (o OrderRef) String() string { return string(o) }

type Payment struct {
	id            uuid.UUID
	invoiceID     uuid.UUID
	amount        money.Money
	method        Method
	orderRef      *OrderRef
	transactionID string
	statusCode    StatusCode
	paidAt        time.Time
}

// NewGatewayPayment records a successful online payment keyed by its order reference.
func NewGatewayPayment(invoiceID uuid.UUID, amount money.Money, ref OrderRef, transactionID string, paidAt time.Time) (*Payment, error) {
	if amount.Minor() <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:            uuid.New(),
		invoiceID:     invoiceID,
		amount:        amount,
		method:        MethodPayHere,
		orderRef:      &ref,
		transactionID: transactionID,
		statusCode:    StatusSuccess,
		paidAt:        paidAt,
	}, nil
}

// NewDeskPayment records money taken at the front desk.
func NewDeskPayment(invoiceID uuid.UUID, amount money.Money, method Method, paidAt time.Time) (*Payment, error) {
	if amount.Minor() <= 0 {
		return nil, ErrInvalidAmount
	}
	if method != MethodCash && method != MethodCard {
		return nil, ErrInvalidMethod
	}
	return &Payment{
		id:         uuid.New(),
		invoiceID:  invoiceID,
		amount:     amount,
		method:     method,
		statusCode: StatusSuccess,
		paidAt:     paidAt,
	}, nil
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) InvoiceID() uuid.UUID   { return p.invoiceID }
func (p *Payment) Amount() money.Money    { return p.amount }
func (p *Payment) Method() Method         { return p.method }
func (p *Payment) OrderRef() *OrderRef    { return p.orderRef }
func (p *Payment) TransactionID() string  { return p.transactionID }
func (p *Payment) StatusCode() StatusCode { return p.statusCode }
func (p *Payment) PaidAt() time.Time      { return p.paidAt }
