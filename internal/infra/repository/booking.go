package repository

import (
	"context"
	"log/slog"
	"time"

	"lounge-scheduler/internal/domain/booking"
	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, machine_id, customer, starts_at, ends_at, status, price_cents,
	offer_id, subscription_id, started_at, created_at, updated_at`

type BookingRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewBookingRepository(db DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: db, logger: logger}
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, machineID         uuid.UUID
		customer, status      string
		startsAt, endsAt      time.Time
		priceCents            int64
		offerID, subscription pgtype.UUID
		startedAt             pgtype.Timestamptz
		createdAt, updatedAt  time.Time
	)
	if err := row.Scan(
		&id, &machineID, &customer, &startsAt, &endsAt, &status, &priceCents,
		&offerID, &subscription, &startedAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		id, machineID, customer,
		timewindow.Reconstruct(startsAt, endsAt),
		booking.Status(status),
		booking.NewMoney(priceCents),
		pgconv.UUIDPtrFromPgtype(offerID),
		pgconv.UUIDPtrFromPgtype(subscription),
		pgconv.TimePtrFromPgtype(startedAt),
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID(), b.MachineID(), b.Customer(),
		b.Window().Start(), b.Window().End(),
		string(b.Status()), b.Price().Cents(),
		pgconv.UUIDPtrToPgtype(b.OfferID()),
		pgconv.UUIDPtrToPgtype(b.SubscriptionID()),
		pgconv.TimePtrToPgtype(b.StartedAt()),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(r.logger, "failed to get booking", err)
	}
	return b, nil
}

// Update persists the mutable part of a booking. Window, machine and price never change.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, started_at = $3, updated_at = $4 WHERE id = $1`,
		b.ID(), string(b.Status()), pgconv.TimePtrToPgtype(b.StartedAt()), b.UpdatedAt(),
	)
	if err != nil {
		return wrapErr(r.logger, "failed to update booking", err)
	}
	return expectOne(r.logger, "booking", tag)
}

func (r *BookingRepository) ListCommitted(ctx context.Context, machineID uuid.UUID, endingAfter time.Time) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		WHERE machine_id = $1 AND status <> 'cancelled' AND ends_at > $2
		ORDER BY starts_at`,
		machineID, endingAfter,
	)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list committed bookings", err)
	}
	return collect(r.logger, "bookings", rows, scanBooking)
}

func (r *BookingRepository) ListByMachine(ctx context.Context, machineID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE machine_id = $1 ORDER BY starts_at, id`,
		machineID,
	)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list machine bookings", err)
	}
	return collect(r.logger, "bookings", rows, scanBooking)
}

func (r *BookingRepository) ListStartingWithin(ctx context.Context, w timewindow.Window) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		WHERE starts_at >= $1 AND starts_at < $2
		ORDER BY starts_at, id`,
		w.Start(), w.End(),
	)
	if err != nil {
		return nil, wrapErr(r.logger, "failed to list bookings in period", err)
	}
	return collect(r.logger, "bookings", rows, scanBooking)
}
