package machine

import (
	"strings"
	"time"

	"lounge-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyMachineName   = errs.Mark(errs.New("machine name cannot be empty"), errs.ErrValidation)
	ErrMachineNameTooLong = errs.Mark(errs.New("machine name is too long (max 100 characters)"), errs.ErrValidation)
	ErrInvalidCategory    = errs.Mark(errs.New("invalid machine category"), errs.ErrValidation)
)

const (
	MaxMachineNameLength = 100
)

type Machine struct {
	id        uuid.UUID
	name      string
	category  Category
	state     State
	createdAt time.Time
	updatedAt time.Time
}

func NewMachine(id uuid.UUID, name string, category Category, now time.Time) (*Machine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyMachineName
	}
	if len(name) > MaxMachineNameLength {
		return nil, ErrMachineNameTooLong
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Machine{
		id:        id,
		name:      name,
		category:  category,
		state:     StateAvailable,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructMachine(id uuid.UUID, name string, category Category, state State, createdAt, updatedAt time.Time) *Machine {
	return &Machine{
		id:        id,
		name:      name,
		category:  category,
		state:     state,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Transition applies event and leaves the machine untouched on failure.
func (m *Machine) Transition(event Event, now time.Time) error {
	next, err := Next(m.state, event)
	if err != nil {
		return errs.Wrapf(err, "machine %s", m.id)
	}
	m.state = next
	m.updatedAt = now
	return nil
}

func (m *Machine) Accepts(event Event) bool {
	return Accepts(m.state, event)
}

// IsBookable is false only while the machine is under maintenance. A booked
// machine still takes bookings for non-overlapping windows.
func (m *Machine) IsBookable() bool {
	return m.state != StateMaintenance
}

func (m *Machine) Clone() *Machine {
	c := *m
	return &c
}

func (m *Machine) ID() uuid.UUID        { return m.id }
func (m *Machine) Name() string         { return m.name }
func (m *Machine) Category() Category   { return m.category }
func (m *Machine) State() State         { return m.state }
func (m *Machine) CreatedAt() time.Time { return m.createdAt }
func (m *Machine) UpdatedAt() time.Time { return m.updatedAt }
