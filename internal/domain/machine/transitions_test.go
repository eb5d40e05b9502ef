//go:build unit

package machine_test

import (
	"strings"
	"testing"
	"time"

	"lounge-scheduler/internal/domain/machine"
	"lounge-scheduler/internal/pkg/errs"
	"lounge-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStates = []machine.State{
	machine.StateAvailable, machine.StateBooked, machine.StateMaintenance, machine.StateCompleted,
}

var allEvents = []machine.Event{
	machine.EventReserve, machine.EventBegin, machine.EventFinish, machine.EventCancel,
	machine.EventEnterMaintenance, machine.EventExitMaintenance, machine.EventRelease,
}

func TestNext(t *testing.T) {
	legal := map[machine.State]map[machine.Event]machine.State{
		machine.StateAvailable: {
			machine.EventReserve:          machine.StateBooked,
			machine.EventEnterMaintenance: machine.StateMaintenance,
		},
		machine.StateBooked: {
			machine.EventReserve: machine.StateBooked,
			machine.EventBegin:   machine.StateBooked,
			machine.EventFinish:  machine.StateCompleted,
			machine.EventCancel:  machine.StateAvailable,
		},
		machine.StateCompleted: {
			machine.EventReserve:          machine.StateBooked,
			machine.EventRelease:          machine.StateAvailable,
			machine.EventEnterMaintenance: machine.StateMaintenance,
		},
		machine.StateMaintenance: {
			machine.EventExitMaintenance: machine.StateAvailable,
		},
	}

	for _, from := range allStates {
		for _, ev := range allEvents {
			t.Run(from.String()+"/"+ev.String(), func(t *testing.T) {
				to, err := machine.Next(from, ev)
				want, ok := legal[from][ev]
				if !ok {
					require.Error(t, err)
					assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
					assert.Equal(t, from, to)
					assert.False(t, machine.Accepts(from, ev))
					return
				}
				require.NoError(t, err)
				assert.Equal(t, want, to)
				assert.True(t, machine.Accepts(from, ev))
			})
		}
	}
}

func TestMachine(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("new machine starts available", func(t *testing.T) {
		m, err := builder.NewMachineBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, machine.StateAvailable, m.State())
		assert.True(t, m.IsBookable())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.MachineBuilder) {}},
			{name: "blank name", mutate: func(b *builder.MachineBuilder) { b.Name = "   " }, errIs: machine.ErrEmptyMachineName},
			{name: "max length name", mutate: func(b *builder.MachineBuilder) { b.Name = strings.Repeat("a", machine.MaxMachineNameLength) }},
			{name: "long name", mutate: func(b *builder.MachineBuilder) {
				b.Name = strings.Repeat("a", machine.MaxMachineNameLength+1)
			}, errIs: machine.ErrMachineNameTooLong},
			{name: "unknown category", mutate: func(b *builder.MachineBuilder) { b.Category = "arcade" }, errIs: machine.ErrInvalidCategory},
		})
	})

	t.Run("lifecycle round trip", func(t *testing.T) {
		m, err := builder.NewMachineBuilder().BuildDomain()
		require.NoError(t, err)

		steps := []struct {
			event machine.Event
			want  machine.State
		}{
			{machine.EventReserve, machine.StateBooked},
			{machine.EventBegin, machine.StateBooked},
			{machine.EventFinish, machine.StateCompleted},
			{machine.EventRelease, machine.StateAvailable},
			{machine.EventEnterMaintenance, machine.StateMaintenance},
			{machine.EventExitMaintenance, machine.StateAvailable},
		}
		for _, step := range steps {
			require.NoError(t, m.Transition(step.event, now), step.event)
			assert.Equal(t, step.want, m.State())
		}
		assert.Equal(t, now, m.UpdatedAt())
	})

	t.Run("failed transition leaves the machine untouched", func(t *testing.T) {
		m := builder.NewMachineBuilder().With(func(b *builder.MachineBuilder) {
			b.State = machine.StateMaintenance
		}).BuildReconstructed()
		before := m.UpdatedAt()

		err := m.Transition(machine.EventReserve, now.Add(time.Hour))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, machine.StateMaintenance, m.State())
		assert.Equal(t, before, m.UpdatedAt())
		assert.False(t, m.IsBookable())
	})
}

type testCase struct {
	name   string
	mutate func(*builder.MachineBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewMachineBuilder().With(tc.mutate)
			m, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.Category, m.Category())
		})
	}
}
