//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/guest"
	"hotel-reservation/internal/domain/inventory"
	"hotel-reservation/internal/domain/invoice"
	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/roomtype"
	"hotel-reservation/internal/domain/stay"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the database. Every Within call runs
// under one mutex and is rolled back when fn fails.
type memStore struct {
	mu    sync.Mutex
	clock clock.Clock

	roomTypes    map[uuid.UUID]*roomtype.RoomType
	rooms        []inventory.RoomRef
	roomStatus   map[uuid.UUID]room.Status
	reservations map[uuid.UUID]*reservation.Reservation
	invoices     map[uuid.UUID]*invoice.Invoice
	payments     []*payment.Payment
	guests       map[uuid.UUID]*guest.Guest
	idempotency  map[string]shared.IdempotencyRecord
	jobs         []string

	guestLookupErr error
}

func newMemStore(clk clock.Clock) *memStore {
	return &memStore{
		clock:        clk,
		roomTypes:    map[uuid.UUID]*roomtype.RoomType{},
		roomStatus:   map[uuid.UUID]room.Status{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		invoices:     map[uuid.UUID]*invoice.Invoice{},
		guests:       map[uuid.UUID]*guest.Guest{},
		idempotency:  map[string]shared.IdempotencyRecord{},
	}
}

type memSnapshot struct {
	rooms        []inventory.RoomRef
	reservations map[uuid.UUID]*reservation.Reservation
	invoices     map[uuid.UUID]*invoice.Invoice
	payments     []*payment.Payment
	guests       map[uuid.UUID]*guest.Guest
	idempotency  map[string]shared.IdempotencyRecord
	jobs         []string
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		rooms:        append([]inventory.RoomRef(nil), s.rooms...),
		reservations: make(map[uuid.UUID]*reservation.Reservation, len(s.reservations)),
		invoices:     make(map[uuid.UUID]*invoice.Invoice, len(s.invoices)),
		payments:     append([]*payment.Payment(nil), s.payments...),
		guests:       make(map[uuid.UUID]*guest.Guest, len(s.guests)),
		idempotency:  make(map[string]shared.IdempotencyRecord, len(s.idempotency)),
		jobs:         append([]string(nil), s.jobs...),
	}
	for k, v := range s.reservations {
		snap.reservations[k] = v
	}
	for k, v := range s.invoices {
		snap.invoices[k] = v
	}
	for k, v := range s.guests {
		snap.guests[k] = v
	}
	for k, v := range s.idempotency {
		snap.idempotency[k] = v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.rooms = snap.rooms
	s.reservations = snap.reservations
	s.invoices = snap.invoices
	s.payments = snap.payments
	s.guests = snap.guests
	s.idempotency = snap.idempotency
	s.jobs = snap.jobs
}

// seeding helpers, used before the command under test runs

func (s *memStore) addRoomType(rt *roomtype.RoomType, rooms int) {
	s.roomTypes[rt.ID()] = rt
	for i := 0; i < rooms; i++ {
		s.rooms = append(s.rooms, inventory.RoomRef{RoomTypeID: rt.ID(), Status: room.StatusClean})
	}
}

func (s *memStore) addReservation(res *reservation.Reservation, g *guest.Guest, currency string) {
	s.reservations[res.ID()] = res
	if g != nil {
		s.guests[g.ID()] = g
	}
	s.invoices[res.ID()] = invoice.NewInvoice(res.ID(), res.Total(), currency, res.Period().CheckIn())
}

func (s *memStore) reservation(id uuid.UUID) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reservations[id]
}

func (s *memStore) invoiceOf(id uuid.UUID) *invoice.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoices[id]
}

func (s *memStore) guestOf(reservationID uuid.UUID) *guest.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[reservationID]
	if !ok {
		return nil
	}
	return s.guests[res.GuestID()]
}

func (s *memStore) statusOfRoom(id uuid.UUID) room.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomStatus[id]
}

func (s *memStore) reservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *memStore) paymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

func (s *memStore) idempotencyRecord(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.idempotency[idemKey(key, userID)]
	return rec, ok
}

func (s *memStore) topics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.jobs...)
}

func (s *memStore) view(id uuid.UUID) *queries.ReservationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return nil
	}
	v := &queries.ReservationView{
		ID:         res.ID(),
		GuestID:    res.GuestID(),
		RoomTypeID: res.RoomTypeID(),
		CheckIn:    res.Period().CheckIn(),
		CheckOut:   res.Period().CheckOut(),
		Status:     res.Status().String(),
		TotalPrice: res.Total().Minor(),
		CreatedBy:  res.CreatedBy(),
	}
	if inv, ok := s.invoices[id]; ok {
		v.Invoice = &queries.InvoiceView{ID: inv.ID(), Status: inv.Status().String(), AmountPaid: inv.AmountPaid().Minor()}
	}
	return v
}

func idemKey(key, userID uuid.UUID) string {
	return key.String() + "/" + userID.String()
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func copyReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.GuestID(), r.RoomTypeID(), r.CreatedBy(),
		r.Period(), r.Status(), r.Total(), r.Note(), r.Version(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}

func copyInvoice(i *invoice.Invoice) *invoice.Invoice {
	return invoice.Reconstruct(i.ID(), i.ReservationID(), i.Amount(), i.AmountPaid(), i.Currency(), i.DueDate(), i.Status())
}

// unit of work

type memUoW struct {
	s *memStore
}

var _ shared.UnitOfWork = (*memUoW)(nil)

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	snap := u.s.snapshot()
	if err := fn(ctx, &memTx{s: u.s}); err != nil {
		u.s.restore(snap)
		return err
	}
	return nil
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) CommandReads() shared.CommandReads {
	return lockedReads{s: u.s}
}

type memTx struct {
	s *memStore
}

func (t *memTx) Reservations() shared.ReservationRepository   { return memReservations{t.s} }
func (t *memTx) RoomTypes() shared.RoomTypeRepository         { return memRoomTypes{t.s} }
func (t *memTx) Rooms() shared.RoomRepository                 { return memRooms{t.s} }
func (t *memTx) Guests() shared.GuestRepository               { return memGuests{t.s} }
func (t *memTx) Invoices() shared.InvoiceRepository           { return memInvoices{t.s} }
func (t *memTx) Payments() shared.PaymentRepository           { return memPayments{t.s} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return memIdempotency{t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return memNotifications{t.s} }
func (t *memTx) Users() shared.UserRepository                 { return memUsers{} }
func (t *memTx) Reads() shared.CommandReads                   { return memReads{t.s} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

// reads

type memReads struct{ s *memStore }

func (r memReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.s.idempotency[idemKey(key, userID)]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

func (r memReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	snap := &shared.ReservationSnapshot{
		ID:         res.ID(),
		CreatedBy:  res.CreatedBy(),
		Status:     res.Status().String(),
		TotalPrice: res.Total().Minor(),
		CheckIn:    res.Period().CheckIn(),
		CheckOut:   res.Period().CheckOut(),
	}
	if inv, ok := r.s.invoices[id]; ok {
		snap.Currency = inv.Currency()
	}
	if rt, ok := r.s.roomTypes[res.RoomTypeID()]; ok {
		snap.RoomType = rt.Name()
	}
	if g, ok := r.s.guests[res.GuestID()]; ok {
		snap.GuestUserID = g.UserID()
		snap.GuestName = g.Name()
		snap.GuestEmail = g.Email().Value()
	}
	return snap, nil
}

type lockedReads struct{ s *memStore }

func (r lockedReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memReads(r).IdempotencyByKey(ctx, key, userID)
}

func (r lockedReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return memReads(r).ReservationByID(ctx, id)
}

// repositories

type memReservations struct{ s *memStore }

func (m memReservations) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	m.s.reservations[res.ID()] = copyReservation(res)
	return res.ID(), nil
}

func (m memReservations) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := m.s.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return copyReservation(res), nil
}

func (m memReservations) UpdateStatus(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	stored, ok := m.s.reservations[res.ID()]
	if !ok {
		return notFound("reservation not found")
	}
	if stored.Version() != res.Version() {
		return infra.WrapRepoErr("version mismatch", nil, infra.KindConflict)
	}
	m.s.reservations[res.ID()] = reservation.ReconstructReservation(
		res.ID(), res.GuestID(), res.RoomTypeID(), res.CreatedBy(),
		res.Period(), res.Status(), res.Total(), res.Note(), res.Version()+1,
		res.CreatedAt(), m.s.clock.Now(),
	)
	return nil
}

func (m memReservations) ListOverlapping(_ context.Context, _ sqlc.DBTX, roomTypeID uuid.UUID, period stay.Period) ([]availability.Occupancy, error) {
	var out []availability.Occupancy
	for _, r := range m.s.reservations {
		if r.RoomTypeID() == roomTypeID && r.HoldsInventory() && r.Period().Overlaps(period) {
			out = append(out, availability.Occupancy{RoomTypeID: roomTypeID, Period: r.Period(), Status: r.Status()})
		}
	}
	return out, nil
}

type memRoomTypes struct{ s *memStore }

func (m memRoomTypes) Create(_ context.Context, _ sqlc.DBTX, rt *roomtype.RoomType) (*roomtype.RoomType, error) {
	m.s.roomTypes[rt.ID()] = rt
	return rt, nil
}

func (m memRoomTypes) Lock(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*roomtype.RoomType, error) {
	rt, ok := m.s.roomTypes[id]
	if !ok {
		return nil, notFound("room type not found")
	}
	return rt, nil
}

func (m memRoomTypes) UpdateRates(_ context.Context, _ sqlc.DBTX, rt *roomtype.RoomType) error {
	m.s.roomTypes[rt.ID()] = rt
	return nil
}

type memRooms struct{ s *memStore }

func (m memRooms) Create(_ context.Context, _ sqlc.DBTX, r *room.Room) (*room.Room, error) {
	if _, ok := m.s.roomTypes[r.RoomTypeID()]; !ok {
		return nil, infra.WrapRepoErr("room type does not exist", nil, infra.KindForeignKeyViolated)
	}
	m.s.rooms = append(m.s.rooms, inventory.RoomRef{RoomTypeID: r.RoomTypeID(), Status: r.Status()})
	m.s.roomStatus[r.ID()] = r.Status()
	return r, nil
}

func (m memRooms) UpdateStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status room.Status) error {
	if _, ok := m.s.roomStatus[id]; !ok {
		return notFound("room not found")
	}
	m.s.roomStatus[id] = status
	return nil
}

func (m memRooms) InventoryOf(_ context.Context, _ sqlc.DBTX, roomTypeID uuid.UUID) ([]inventory.RoomRef, error) {
	var out []inventory.RoomRef
	for _, r := range m.s.rooms {
		if r.RoomTypeID == roomTypeID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memGuests struct{ s *memStore }

func (m memGuests) FindByEmail(_ context.Context, _ sqlc.DBTX, email user.Email) (*guest.Guest, error) {
	if m.s.guestLookupErr != nil {
		return nil, m.s.guestLookupErr
	}
	for _, g := range m.s.guests {
		if g.Email() == email {
			return g, nil
		}
	}
	return nil, notFound("guest not found")
}

func (m memGuests) Create(_ context.Context, _ sqlc.DBTX, g *guest.Guest) (uuid.UUID, error) {
	m.s.guests[g.ID()] = g
	return g.ID(), nil
}

type memInvoices struct{ s *memStore }

func (m memInvoices) Create(_ context.Context, _ sqlc.DBTX, inv *invoice.Invoice) error {
	m.s.invoices[inv.ReservationID()] = copyInvoice(inv)
	return nil
}

func (m memInvoices) LockByReservation(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID) (*invoice.Invoice, error) {
	inv, ok := m.s.invoices[reservationID]
	if !ok {
		return nil, notFound("invoice not found")
	}
	return copyInvoice(inv), nil
}

func (m memInvoices) UpdatePayment(_ context.Context, _ sqlc.DBTX, inv *invoice.Invoice) error {
	m.s.invoices[inv.ReservationID()] = copyInvoice(inv)
	return nil
}

type memPayments struct{ s *memStore }

func (m memPayments) Create(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	if p.OrderRef() != nil {
		for _, existing := range m.s.payments {
			if existing.OrderRef() != nil && *existing.OrderRef() == *p.OrderRef() {
				return infra.WrapRepoErr("duplicate order reference", nil, infra.KindDuplicateKey)
			}
		}
	}
	m.s.payments = append(m.s.payments, p)
	return nil
}

func (m memPayments) ExistsByOrderRef(_ context.Context, _ sqlc.DBTX, ref payment.OrderRef) (bool, error) {
	for _, p := range m.s.payments {
		if p.OrderRef() != nil && *p.OrderRef() == ref {
			return true, nil
		}
	}
	return false, nil
}

type memIdempotency struct{ s *memStore }

func (m memIdempotency) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey(key, userID)
	if _, exists := m.s.idempotency[k]; exists {
		return false, nil
	}
	m.s.idempotency[k] = shared.IdempotencyRecord{
		Key: key, UserID: userID, Endpoint: endpoint, Status: "processing",
		RequestHash: requestHash, ExpiresAt: expiresAt,
	}
	return true, nil
}

func (m memIdempotency) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, reservationID uuid.UUID) error {
	k := idemKey(key, userID)
	rec := m.s.idempotency[k]
	rec.Status = "completed"
	rec.ResultReservationID = &reservationID
	m.s.idempotency[k] = rec
	return nil
}

func (m memIdempotency) ClaimExpiredIdempotencyKey(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (int64, error) {
	k := idemKey(key, userID)
	rec, ok := m.s.idempotency[k]
	if !ok || !rec.ExpiresAt.Before(m.s.clock.Now()) {
		return 0, nil
	}
	m.s.idempotency[k] = shared.IdempotencyRecord{
		Key: key, UserID: userID, Endpoint: endpoint, Status: "processing",
		RequestHash: requestHash, ExpiresAt: expiresAt,
	}
	return 1, nil
}

func (m memIdempotency) Release(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID) error {
	k := idemKey(key, userID)
	if rec, ok := m.s.idempotency[k]; ok && rec.Status == "processing" {
		delete(m.s.idempotency, k)
	}
	return nil
}

type memNotifications struct{ s *memStore }

func (m memNotifications) CreateJob(_ context.Context, _ sqlc.DBTX, _, topic string, _ []byte, _ time.Time) error {
	m.s.jobs = append(m.s.jobs, topic)
	return nil
}

type memUsers struct{}

func (memUsers) UpdateLastLogin(context.Context, sqlc.DBTX, uuid.UUID) error { return nil }

func (memUsers) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	return u.ID(), nil
}

// metrics

type recordingMetrics struct {
	mu          sync.Mutex
	attempts    []string
	transitions []string
	reconciles  []string
}

func (m *recordingMetrics) ReservationAttempt(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, outcome)
}

func (m *recordingMetrics) ReservationTransition(to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, to)
}

func (m *recordingMetrics) PaymentReconciliation(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reconciles = append(m.reconciles, outcome)
}
