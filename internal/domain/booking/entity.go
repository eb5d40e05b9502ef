package booking

import (
	"strings"
	"time"

	"lounge-scheduler/internal/domain/timewindow"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomer    = errs.Mark(errs.New("customer cannot be empty"), errs.ErrValidation)
	ErrCustomerTooLong  = errs.Mark(errs.New("customer is too long (max 255 characters)"), errs.ErrValidation)
	ErrMissingMachineID = errs.Mark(errs.New("machine id is required"), errs.ErrValidation)
	ErrNegativePrice    = errs.Mark(errs.New("price cannot be negative"), errs.ErrValidation)
)

const (
	MaxCustomerLength = 255
)

type Booking struct {
	id             uuid.UUID
	machineID      uuid.UUID
	customer       string
	window         timewindow.Window
	status         Status
	price          Money
	offerID        *uuid.UUID
	subscriptionID *uuid.UUID
	startedAt      *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

type Params struct {
	MachineID      uuid.UUID
	Customer       string
	Window         timewindow.Window
	Price          Money
	OfferID        *uuid.UUID
	SubscriptionID *uuid.UUID
}

// NewBooking admits nothing by itself; it only checks the booking is well formed
// and that the window does not start before now.
func NewBooking(p Params, now time.Time) (*Booking, error) {
	if p.MachineID == uuid.Nil {
		return nil, ErrMissingMachineID
	}
	customer := strings.TrimSpace(p.Customer)
	if customer == "" {
		return nil, ErrEmptyCustomer
	}
	if len(customer) > MaxCustomerLength {
		return nil, ErrCustomerTooLong
	}
	if p.Window.IsZero() {
		return nil, errs.Mark(errs.New("booking window is required"), errs.ErrInvalidWindow)
	}
	if err := p.Window.ValidateNotPastAt(now); err != nil {
		return nil, err
	}
	if p.Price.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:             uuid.New(),
		machineID:      p.MachineID,
		customer:       customer,
		window:         p.Window,
		status:         StatusBooked,
		price:          p.Price,
		offerID:        p.OfferID,
		subscriptionID: p.SubscriptionID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructBooking(
	id, machineID uuid.UUID,
	customer string,
	window timewindow.Window,
	status Status,
	price Money,
	offerID, subscriptionID *uuid.UUID,
	startedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		machineID:      machineID,
		customer:       customer,
		window:         window,
		status:         status,
		price:          price,
		offerID:        offerID,
		subscriptionID: subscriptionID,
		startedAt:      startedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusBooked {
		return b.invalid("cancel")
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// Complete is only legal once the window has ended.
func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusBooked {
		return b.invalid("complete")
	}
	if now.Before(b.window.End()) {
		return errs.Mark(
			errs.Newf("booking %s cannot complete before %s", b.id, b.window.End().Format(time.RFC3339)),
			errs.ErrInvalidTransition,
		)
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

// Begin records the customer checking in. Only legal inside the window and once.
func (b *Booking) Begin(now time.Time) error {
	if b.status != StatusBooked || b.startedAt != nil {
		return b.invalid("begin")
	}
	if !b.window.Contains(now) {
		return errs.Mark(
			errs.Newf("booking %s can only begin within %s", b.id, b.window),
			errs.ErrInvalidTransition,
		)
	}
	started := now
	b.startedAt = &started
	b.updatedAt = now
	return nil
}

func (b *Booking) invalid(action string) error {
	return errs.Mark(
		errs.Newf("booking %s cannot %s while %s", b.id, action, b.status),
		errs.ErrInvalidTransition,
	)
}

// IsCommitted reports whether the booking occupies its window on the timeline.
func (b *Booking) IsCommitted() bool {
	return b.status != StatusCancelled
}

func (b *Booking) IsActive() bool {
	return b.status == StatusBooked
}

func (b *Booking) Clone() *Booking {
	c := *b
	c.startedAt = ptr.Clone(b.startedAt)
	return &c
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) MachineID() uuid.UUID       { return b.machineID }
func (b *Booking) Customer() string           { return b.customer }
func (b *Booking) Window() timewindow.Window  { return b.window }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Price() Money               { return b.price }
func (b *Booking) OfferID() *uuid.UUID        { return b.offerID }
func (b *Booking) SubscriptionID() *uuid.UUID { return b.subscriptionID }
func (b *Booking) StartedAt() *time.Time      { return b.startedAt }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
