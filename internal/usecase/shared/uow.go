package shared

import (
	"context"
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
	sqlc "hotel-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	RoomTypes() RoomTypeRepository
	Rooms() RoomRepository
	Guests() GuestRepository
	Invoices() InvoiceRepository
	Payments() PaymentRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// LockByID loads the reservation with a row lock held until the transaction ends.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	// UpdateStatus writes the new status only if the stored version still matches.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	ListOverlapping(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID, period stay.Period) ([]availability.Occupancy, error)
}

type RoomTypeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) (*roomtype.RoomType, error)
	// Lock serializes reservation creation per room type.
	Lock(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*roomtype.RoomType, error)
	UpdateRates(ctx context.Context, tx sqlc.DBTX, rt *roomtype.RoomType) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *room.Room) (*room.Room, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status room.Status) error
	InventoryOf(ctx context.Context, tx sqlc.DBTX, roomTypeID uuid.UUID) ([]inventory.RoomRef, error)
}

type GuestRepository interface {
	FindByEmail(ctx context.Context, tx sqlc.DBTX, email user.Email) (*guest.Guest, error)
	Create(ctx context.Context, tx sqlc.DBTX, g *guest.Guest) (uuid.UUID, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error
	LockByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) (*invoice.Invoice, error)
	UpdatePayment(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	ExistsByOrderRef(ctx context.Context, tx sqlc.DBTX, ref payment.OrderRef) (bool, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (inserted bool, err error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, reservationID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (int64, error)
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
}
