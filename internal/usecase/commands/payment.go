package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-reservation/internal/domain/authz"
	"hotel-reservation/internal/domain/invoice"
	"hotel-reservation/internal/domain/money"
	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/stay"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconcileOutcome string

const (
	OutcomeApplied        ReconcileOutcome = "APPLIED"
	OutcomeAlreadyApplied ReconcileOutcome = "ALREADY_APPLIED"
)

const (
	reconcileOutcomeInvalidSignature = "invalid_signature"
	reconcileOutcomeUnknownOrder     = "unknown_order"
	reconcileOutcomeFailed           = "payment_failed"
	reconcileOutcomeError            = "error"

	topicPaymentReconciled  = "payment_reconciled"
	topicPaymentOnCancelled = "payment_on_cancelled"

	paymentLockPrefix = "payment:"
)

var errAlreadyApplied = errs.New("payment already applied")

type ReconciliationResult struct {
	OrderRef          payment.OrderRef
	Outcome           ReconcileOutcome
	ReservationStatus reservation.Status
	InvoiceStatus     invoice.Status
	// RefundRequired is set when money was captured for a cancelled stay.
	RefundRequired bool
}

type DeskPaymentInput struct {
	Amount int64
	Method string
}

type DeskPaymentResult struct {
	ReservationID     uuid.UUID
	ReservationStatus reservation.Status
	InvoiceStatus     invoice.Status
	AmountPaid        money.Money
	Outstanding       money.Money
}

type PaymentCommands interface {
	InitiateCheckout(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) (*shared.CheckoutPayload, error)
	Reconcile(ctx context.Context, n shared.GatewayNotification) (*ReconciliationResult, error)
	RecordDeskPayment(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, in DeskPaymentInput) (*DeskPaymentResult, error)
}

type paymentCommandsImpl struct {
	uow                shared.UnitOfWork
	gateway            shared.PaymentGateway
	locker             shared.Locker
	reservationQueries queries.ReservationQueries
	metrics            shared.Metrics
	clock              clock.Clock
	lockTTL            time.Duration
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	locker shared.Locker,
	reservationQueries queries.ReservationQueries,
	metrics shared.Metrics,
	clock clock.Clock,
	lockTTL time.Duration,
) PaymentCommands {
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	return &paymentCommandsImpl{
		uow:                uow,
		gateway:            gateway,
		locker:             locker,
		reservationQueries: reservationQueries,
		metrics:            metrics,
		clock:              clock,
		lockTTL:            lockTTL,
	}
}

// InitiateCheckout builds the signed form for the hosted payment page.
func (c *paymentCommandsImpl) InitiateCheckout(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) (*shared.CheckoutPayload, error) {
	if !actor.CanAny(authz.CreateBooking, authz.ManageBookings) {
		return nil, errs.ErrForbidden
	}

	snap, err := c.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, mapReservationLoadErr(err)
	}
	if !actor.Can(authz.ManageBookings) && !snap.OwnedBy(actor.UserID) {
		return nil, errs.ErrForbidden
	}
	if reservation.Status(snap.Status) != reservation.StatusPending {
		return nil, errs.Wrapf(errs.ErrInvalidTransition, "reservation is %s", snap.Status)
	}

	first, last := splitName(snap.GuestName)
	payload := c.gateway.Checkout(shared.CheckoutRequest{
		OrderID:   payment.NewOrderRef(snap.ID).String(),
		Amount:    money.FromMinor(snap.TotalPrice),
		Currency:  snap.Currency,
		Items:     snap.RoomType + ", " + snap.CheckIn.Format(stay.DateLayout) + " to " + snap.CheckOut.Format(stay.DateLayout),
		FirstName: first,
		LastName:  last,
		Email:     snap.GuestEmail,
		Phone:     snap.GuestPhone,
	})

	slog.Info("checkout initiated", "reservation_id", snap.ID, "order_id", payload.OrderID, "user_id", actor.UserID)
	return &payload, nil
}

// Reconcile applies a gateway notification at most once per order reference.
func (c *paymentCommandsImpl) Reconcile(ctx context.Context, n shared.GatewayNotification) (*ReconciliationResult, error) {
	if err := c.gateway.VerifyNotification(n); err != nil {
		c.metrics.PaymentReconciliation(reconcileOutcomeInvalidSignature)
		slog.Warn("rejected payment notification", "order_id", n.OrderID, "error", err.Error())
		return nil, err
	}

	ref := payment.OrderRef(strings.TrimSpace(n.OrderID))
	reservationID, err := ref.ReservationID()
	if err != nil {
		c.metrics.PaymentReconciliation(reconcileOutcomeUnknownOrder)
		return nil, err
	}

	release, err := c.locker.Acquire(ctx, paymentLockPrefix+ref.String(), c.lockTTL)
	if err != nil {
		c.metrics.PaymentReconciliation(reconcileOutcomeError)
		if errs.Is(err, shared.ErrLockBusy) {
			return nil, errs.Mark(err, errs.ErrConcurrentModification)
		}
		return nil, errs.Mark(err, errs.ErrDependencyFailed)
	}
	defer func() {
		if relErr := release(context.WithoutCancel(ctx)); relErr != nil {
			slog.Warn("failed to release payment lock", "order_id", ref.String(), "error", relErr.Error())
		}
	}()

	result, err := c.applyGatewayPayment(ctx, ref, reservationID, n)
	switch {
	case err == nil:
	case errs.Is(err, errAlreadyApplied):
		result, err = c.alreadyApplied(ctx, ref, reservationID)
		if err != nil {
			c.metrics.PaymentReconciliation(reconcileOutcomeError)
			return nil, err
		}
	default:
		switch {
		case errs.Is(err, errs.ErrUnknownOrder):
			c.metrics.PaymentReconciliation(reconcileOutcomeUnknownOrder)
		case errs.Is(err, errs.ErrPaymentFailed):
			c.metrics.PaymentReconciliation(reconcileOutcomeFailed)
		default:
			c.metrics.PaymentReconciliation(reconcileOutcomeError)
		}
		return nil, err
	}

	c.metrics.PaymentReconciliation(strings.ToLower(string(result.Outcome)))
	slog.Info("payment reconciled",
		"order_id", ref.String(),
		"outcome", string(result.Outcome),
		"reservation_status", result.ReservationStatus.String(),
		"invoice_status", result.InvoiceStatus.String())

	return result, nil
}

func (c *paymentCommandsImpl) applyGatewayPayment(
	ctx context.Context,
	ref payment.OrderRef,
	reservationID uuid.UUID,
	n shared.GatewayNotification,
) (*ReconciliationResult, error) {
	var result *ReconciliationResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, inv, err := lockReservationAndInvoice(ctx, tx, reservationID)
		if err != nil {
			return err
		}

		applied, err := tx.Payments().ExistsByOrderRef(ctx, tx.DB(), ref)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if applied {
			result = &ReconciliationResult{
				OrderRef:          ref,
				Outcome:           OutcomeAlreadyApplied,
				ReservationStatus: res.Status(),
				InvoiceStatus:     inv.Status(),
			}
			return nil
		}

		code, err := payment.ParseStatusCode(n.StatusCode)
		if err != nil {
			return errs.Mark(err, errs.ErrPaymentFailed)
		}
		if !code.IsSuccess() {
			return errs.Wrapf(errs.ErrPaymentFailed, "gateway status %s", code.String())
		}

		amount, err := money.ParseDecimal(n.Amount)
		if err != nil {
			return errs.Mark(err, errs.ErrPaymentFailed)
		}
		if !strings.EqualFold(n.Currency, inv.Currency()) {
			return errs.Wrapf(errs.ErrPaymentFailed, "currency %s does not match invoice currency %s", n.Currency, inv.Currency())
		}

		p, err := payment.NewGatewayPayment(inv.ID(), amount, ref, n.PaymentID, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrPaymentFailed)
		}
		if err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errAlreadyApplied)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := settle(ctx, tx, res, inv, amount); err != nil {
			return err
		}

		refund := res.Status() == reservation.StatusCancelled
		topic := topicPaymentReconciled
		if refund {
			topic = topicPaymentOnCancelled
		}
		if err := enqueueNotification(ctx, tx, c.clock, topic, map[string]any{
			"reservation_id": res.ID(),
			"order_id":       ref.String(),
			"amount":         amount.Decimal(),
			"currency":       inv.Currency(),
			"invoice_status": inv.Status().String(),
		}); err != nil {
			return err
		}

		result = &ReconciliationResult{
			OrderRef:          ref,
			Outcome:           OutcomeApplied,
			ReservationStatus: res.Status(),
			InvoiceStatus:     inv.Status(),
			RefundRequired:    refund,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Outcome == OutcomeApplied && result.ReservationStatus == reservation.StatusConfirmed {
		c.metrics.ReservationTransition(reservation.StatusConfirmed.String())
	}
	if result.RefundRequired {
		slog.Warn("payment captured for cancelled reservation", "reservation_id", reservationID, "order_id", ref.String())
	}
	return result, nil
}

// alreadyApplied reports the current state after a concurrent duplicate insert lost the race.
func (c *paymentCommandsImpl) alreadyApplied(ctx context.Context, ref payment.OrderRef, reservationID uuid.UUID) (*ReconciliationResult, error) {
	view, err := c.reservationQueries.GetByID(ctx, shared.System, reservationID)
	if err != nil {
		return nil, err
	}
	result := &ReconciliationResult{
		OrderRef:          ref,
		Outcome:           OutcomeAlreadyApplied,
		ReservationStatus: reservation.Status(view.Status),
	}
	if view.Invoice != nil {
		result.InvoiceStatus = invoice.Status(view.Invoice.Status)
	}
	return result, nil
}

// RecordDeskPayment books cash or card taken at the front desk.
func (c *paymentCommandsImpl) RecordDeskPayment(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, in DeskPaymentInput) (*DeskPaymentResult, error) {
	if !actor.Can(authz.RecordPayments) {
		return nil, errs.ErrForbidden
	}

	method, err := payment.ParseMethod(in.Method)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	amount, err := money.New(in.Amount)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result DeskPaymentResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, inv, err := lockReservationAndInvoice(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if res.Status().IsTerminal() {
			return errs.Wrapf(errs.ErrInvalidTransition, "cannot take payment for a %s reservation", res.Status())
		}

		p, err := payment.NewDeskPayment(inv.ID(), amount, method, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := settle(ctx, tx, res, inv, amount); err != nil {
			return err
		}

		if err := enqueueNotification(ctx, tx, c.clock, "payment_recorded", map[string]any{
			"reservation_id": res.ID(),
			"amount":         amount.Decimal(),
			"method":         string(method),
			"recorded_by":    actor.UserID,
		}); err != nil {
			return err
		}

		result = DeskPaymentResult{
			ReservationID:     res.ID(),
			ReservationStatus: res.Status(),
			InvoiceStatus:     inv.Status(),
			AmountPaid:        inv.AmountPaid(),
			Outstanding:       inv.Outstanding(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("desk payment recorded",
		"reservation_id", reservationID,
		"method", string(method),
		"amount", amount.Decimal(),
		"user_id", actor.UserID)

	return &result, nil
}

func lockReservationAndInvoice(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) (*reservation.Reservation, *invoice.Invoice, error) {
	res, err := tx.Reservations().LockByID(ctx, tx.DB(), reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, errs.ErrUnknownOrder)
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	inv, err := tx.Invoices().LockByReservation(ctx, tx.DB(), reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, errs.ErrUnknownOrder)
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, inv, nil
}

// settle adds amount to the invoice and confirms a still pending reservation.
func settle(ctx context.Context, tx shared.Tx, res *reservation.Reservation, inv *invoice.Invoice, amount money.Money) error {
	if err := inv.ApplyPayment(amount); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := tx.Invoices().UpdatePayment(ctx, tx.DB(), inv); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if res.Status() != reservation.StatusPending {
		return nil
	}
	if err := res.Confirm(); err != nil {
		return err
	}
	if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, errs.ErrConcurrentModification)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func splitName(full string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(full), " ")
	return first, strings.TrimSpace(last)
}
